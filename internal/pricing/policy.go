package pricing

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

const minutesPerDay = 24 * 60

// ErrInvalidPolicy возвращается при некорректных параметрах тарификации
var ErrInvalidPolicy = errors.New("pricing: invalid policy")

// Window рабочее окно категории дня в минутах от полуночи этого дня.
// CloseMinute может быть больше 1440, если окно заканчивается после полуночи
type Window struct {
	OpenMinute  int
	CloseMinute int
}

// Policy настраиваемые границы тарификации
type Policy struct {
	DefaultPriceListID      string
	FridayEveningFrom       types.TimeString // С этого времени пятница считается выходным
	LateWeekdayRateFrom     types.TimeString // С этого времени в будни действует ночная ставка
	DefaultMinimumHours     float64          // Если у зала минимум не задан
	CleaningGuestsThreshold int              // До скольких гостей включительно действует малый сбор за уборку
	AfterHours              map[domain.DayCategory]Window
}

// DefaultPolicy границы по умолчанию:
// пятница с 17:00, ночная ставка с 22:00, рабочее окно 10:00-24:00 для всех категорий
func DefaultPolicy() Policy {
	window := Window{OpenMinute: 10 * 60, CloseMinute: minutesPerDay}
	return Policy{
		DefaultPriceListID:      domain.DefaultPriceListID,
		FridayEveningFrom:       "17:00",
		LateWeekdayRateFrom:     "22:00",
		DefaultMinimumHours:     2,
		CleaningGuestsThreshold: 30,
		AfterHours: map[domain.DayCategory]Window{
			domain.DayWeekday:        window,
			domain.DayFridaySaturday: window,
			domain.DaySunday:         window,
		},
	}
}

// Validate проверяет согласованность параметров
func (p Policy) Validate() error {
	if p.DefaultPriceListID == "" {
		return fmt.Errorf("%w: default price list is required", ErrInvalidPolicy)
	}
	if err := p.FridayEveningFrom.Validate(); err != nil {
		return fmt.Errorf("%w: friday evening cutoff: %v", ErrInvalidPolicy, err)
	}
	if err := p.LateWeekdayRateFrom.Validate(); err != nil {
		return fmt.Errorf("%w: late weekday rate start: %v", ErrInvalidPolicy, err)
	}
	if p.DefaultMinimumHours < 0 {
		return fmt.Errorf("%w: default minimum hours must be non-negative", ErrInvalidPolicy)
	}
	if p.CleaningGuestsThreshold < 0 {
		return fmt.Errorf("%w: cleaning guests threshold must be non-negative", ErrInvalidPolicy)
	}
	for _, category := range []domain.DayCategory{domain.DayWeekday, domain.DayFridaySaturday, domain.DaySunday} {
		window, ok := p.AfterHours[category]
		if !ok {
			return fmt.Errorf("%w: after-hours window for %s is missing", ErrInvalidPolicy, category)
		}
		if window.OpenMinute < 0 || window.OpenMinute >= minutesPerDay {
			return fmt.Errorf("%w: %s window opens outside of the day", ErrInvalidPolicy, category)
		}
		if window.CloseMinute <= window.OpenMinute || window.CloseMinute > 2*minutesPerDay {
			return fmt.Errorf("%w: %s window must close after it opens and within the next day", ErrInvalidPolicy, category)
		}
	}
	return nil
}
