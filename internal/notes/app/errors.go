package app

import "errors"

// Ошибки уровня бизнес-логики.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUserNotFound = errors.New("There is no user with that ID") //nolint:staticcheck // сообщение отдается клиенту как есть
	ErrNoteNotFound = errors.New("note not found")
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
)
