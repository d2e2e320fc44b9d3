package pricing

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// CategorizeDay определяет категорию дня по дате и времени начала.
// Пятница с fridayEveningFrom и позже тарифицируется как выходной
func CategorizeDay(date time.Time, start types.TimeString, fridayEveningFrom types.TimeString) domain.DayCategory {
	switch date.Weekday() {
	case time.Sunday:
		return domain.DaySunday
	case time.Saturday:
		return domain.DayFridaySaturday
	case time.Friday:
		if !start.IsBefore(fridayEveningFrom) {
			return domain.DayFridaySaturday
		}
		return domain.DayWeekday
	default:
		return domain.DayWeekday
	}
}
