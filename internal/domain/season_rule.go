package domain

import (
	"errors"
	"time"
)

var (
	// ErrEmptyDaysMask возвращается, если у правила не указаны дни недели
	ErrEmptyDaysMask = errors.New("domain: season rule days of week mask is empty")

	// ErrInvalidDateRange возвращается, если начало периода позже конца
	ErrInvalidDateRange = errors.New("domain: season rule start date is after end date")

	// ErrInvalidWeekday возвращается для дня недели вне диапазона 0..6
	ErrInvalidWeekday = errors.New("domain: weekday must be between 0 (Sunday) and 6 (Saturday)")
)

// SeasonRule сезонное правило: период + дни недели + приоритет -> прайс-лист.
// Границы периода включительные, сравниваются только даты
type SeasonRule struct {
	ID          int64
	PriceListID string
	StartDate   time.Time
	EndDate     time.Time
	DaysOfWeek  []time.Weekday // 0 = воскресенье
	Priority    int            // Больше = важнее
}

// Validate проверяет инварианты правила
func (r *SeasonRule) Validate() error {
	if len(r.DaysOfWeek) == 0 {
		return ErrEmptyDaysMask
	}
	for _, day := range r.DaysOfWeek {
		if day < time.Sunday || day > time.Saturday {
			return ErrInvalidWeekday
		}
	}
	if DateOnly(r.StartDate).After(DateOnly(r.EndDate)) {
		return ErrInvalidDateRange
	}
	return nil
}

// Matches возвращает true, если дата попадает в период и день недели входит в маску
func (r *SeasonRule) Matches(date time.Time) bool {
	day := DateOnly(date)
	if day.Before(DateOnly(r.StartDate)) || day.After(DateOnly(r.EndDate)) {
		return false
	}
	return r.HasWeekday(day.Weekday())
}

// HasWeekday возвращает true, если день недели входит в маску правила
func (r *SeasonRule) HasWeekday(weekday time.Weekday) bool {
	for _, day := range r.DaysOfWeek {
		if day == weekday {
			return true
		}
	}
	return false
}

// DateOnly отбрасывает время и часовой пояс, оставляя календарную дату
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
