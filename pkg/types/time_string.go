package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	timeLayout     = "15:04"
	minutesPerHour = 60
)

// ErrInvalidTimeString возвращается, если строка не в формате HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате HH:MM (например, "10:00")
type TimeString string

// NewTimeStringFromString парсит и валидирует строку HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if len(t) != len(timeLayout) {
		return ErrInvalidTimeString
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeString, err)
	}
	return nil
}

func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут от полуночи.
// Для невалидной строки возвращает 0
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*minutesPerHour + parsed.Minute()
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}
