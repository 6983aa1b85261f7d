package entities

import "time"

// Note заметка пользователя.
type Note struct {
	ID        string `json:"id" bson:"id" validate:"required"`
	UserID    string `json:"userId" bson:"userId" validate:"required"`
	Title     string `json:"title" bson:"title" validate:"required,max=50"`
	Text      string `json:"text" bson:"text" validate:"required,max=1000"`
	Done      bool   `json:"done" bson:"done"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt" validate:"required"`
}

// NewNote собирает новую незавершенную заметку с меткой времени now в миллисекундах.
func NewNote(id, userID, title, text string, now time.Time) *Note {
	return &Note{
		ID:        id,
		UserID:    userID,
		Title:     title,
		Text:      text,
		Done:      false,
		CreatedAt: now.UnixMilli(),
	}
}

// NoteSummary проекция заметки для списка.
type NoteSummary struct {
	Title     string `json:"title" bson:"title"`
	UserID    string `json:"userId" bson:"userId"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
	Done      bool   `json:"done" bson:"done"`
}

// NoteWithUser заметка вместе с владельцем. User пуст, если владелец не найден.
type NoteWithUser struct {
	User      *User  `json:"user,omitempty" bson:"user,omitempty"`
	Title     string `json:"title" bson:"title"`
	Text      string `json:"text" bson:"text"`
	Done      bool   `json:"done" bson:"done"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}

// NoteStatus состояние флага выполнения.
type NoteStatus struct {
	Done bool `json:"done" bson:"done"`
}
