// Package entities описывает сущности сервиса заметок и их проекции для чтения.
//
// Теги validate задают единственную схему проверки каждой сущности,
// ее используют все места, где сущность создается.
package entities

// User пользователь, владелец заметок.
type User struct {
	ID        string `json:"id" bson:"id" validate:"required"`
	FirstName string `json:"firstName" bson:"firstName" validate:"required,max=50,nowhitespace"`
	LastName  string `json:"lastName" bson:"lastName" validate:"required,max=50,nowhitespace"`
	Email     string `json:"email" bson:"email" validate:"required,email"`
}

// NewUser собирает кандидата в пользователи. Проверка выполняется отдельно.
func NewUser(id, firstName, lastName, email string) *User {
	return &User{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
}

// UserWithNoteCount пользователь вместе с числом его заметок.
type UserWithNoteCount struct {
	ID        string `json:"id" bson:"id"`
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Email     string `json:"email" bson:"email"`
	NoteCount int    `json:"noteCount" bson:"noteCount"`
}
