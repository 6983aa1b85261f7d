package entities

import (
	"fmt"
	"time"

	"gonotes/pkg/option"
)

// DateLayout формат параметра date.
const DateLayout = "2006-01-02"

// DayRange включительный интервал createdAt в миллисекундах.
type DayRange struct {
	From int64
	To   int64
}

// Contains сообщает, попадает ли ts в интервал.
func (r DayRange) Contains(ts int64) bool {
	return ts >= r.From && ts <= r.To
}

// DayBounds возвращает интервал [00:00:01, 23:59:59] календарного дня date в зоне loc.
func DayBounds(date string, loc *time.Location) (DayRange, error) {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return DayRange{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 1, 0, loc)
	to := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, loc)
	return DayRange{From: from.UnixMilli(), To: to.UnixMilli()}, nil
}

// NoteFilter условия выборки заметок пользователя.
type NoteFilter struct {
	UserID string
	Day    option.Option[DayRange]
}
