// Package dto описывает тела HTTP-запросов и ответов сервиса заметок.
package dto

import "gonotes/internal/notes/domain/entities"

// CreateUserRequest содержит данные для создания пользователя.
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	UserID string `json:"userId"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

// CreateUserResponse ответ на создание пользователя.
type CreateUserResponse struct {
	Success bool           `json:"success"`
	User    *entities.User `json:"user"`
}

// CreateNoteResponse ответ на создание заметки.
type CreateNoteResponse struct {
	Success bool           `json:"success"`
	Note    *entities.Note `json:"note"`
}

// FailureResponse отказ в создании записи.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ErrorResponse ошибка запроса.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse состояние сервиса.
type HealthResponse struct {
	Status string `json:"status"`
}
