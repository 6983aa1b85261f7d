package app

import (
	"time"

	"gonotes/internal/notes/domain/validation"
	"gonotes/pkg/shortid"
)

// Clock источник текущего времени.
type Clock func() time.Time

// IDGenerator выдает идентификаторы новых записей.
type IDGenerator func() string

// Option настраивает use case.
type Option func(*settings)

type settings struct {
	now       Clock
	newID     IDGenerator
	location  *time.Location
	validator *validation.Validator
}

func newSettings(opts []Option) settings {
	s := settings{
		now:       time.Now,
		newID:     shortid.New,
		location:  time.Local,
		validator: validation.Default(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithClock подменяет часы.
func WithClock(c Clock) Option {
	return func(s *settings) {
		if c != nil {
			s.now = c
		}
	}
}

// WithIDGenerator подменяет генератор идентификаторов.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *settings) {
		if g != nil {
			s.newID = g
		}
	}
}

// WithLocation задает зону, в которой считаются границы дня.
func WithLocation(loc *time.Location) Option {
	return func(s *settings) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithValidator подменяет валидатор.
func WithValidator(v *validation.Validator) Option {
	return func(s *settings) {
		if v != nil {
			s.validator = v
		}
	}
}
