package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/dto"
	"gonotes/internal/notes/domain/entities"
	"gonotes/pkg/logger"
)

// Константы сообщений для логирования.
const (
	LogHandlerCreateNote   = "handling create note request"
	LogHandlerListNotes    = "handling list notes request"
	LogHandlerGetNote      = "handling get note request"
	LogHandlerToggleStatus = "handling toggle note status request"
)

// CreateNote создает заметку.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(reqCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Warn(reqCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return send(ctx, fiber.StatusBadRequest, dto.FailureResponse{Error: ErrMsgInvalidRequestBody})
	}

	note, err := h.notes.CreateNote(reqCtx, req.UserID, req.Title, req.Text)
	if err != nil {
		return handleError(ctx, log, err)
	}
	h.metrics.NoteCreated()

	return send(ctx, fiber.StatusOK, dto.CreateNoteResponse{Success: true, Note: note})
}

// ListNotes возвращает заметки пользователя, при наличии ?date=YYYY-MM-DD только за этот день.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(reqCtx, LogHandlerListNotes)

	notes, err := h.notes.ListNotes(reqCtx, ctx.Params("userId"), ctx.Query("date"))
	if err != nil {
		return handleError(ctx, log, err)
	}

	return send(ctx, fiber.StatusOK, notes)
}

// GetNote возвращает заметку с владельцем: массив из нуля или одного элемента.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(reqCtx, LogHandlerGetNote)

	note, err := h.notes.GetNoteWithUser(reqCtx, ctx.Params("userId"), ctx.Params("noteId"))
	if err != nil {
		return handleError(ctx, log, err)
	}

	return send(ctx, fiber.StatusOK, note.Slice())
}

// ToggleStatus инвертирует done у заметки.
func (h *Handler) ToggleStatus(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.ToggleStatus"))
	log.Debug(reqCtx, LogHandlerToggleStatus)

	status, err := h.notes.ToggleStatus(reqCtx, ctx.Params("userId"), ctx.Params("noteId"))
	if err != nil {
		return handleError(ctx, log, err)
	}
	h.metrics.NoteToggled()

	return send(ctx, fiber.StatusOK, []entities.NoteStatus{status})
}
