package pricing

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// ResolvePriceList выбирает прайс-лист для даты.
//
// Из правил, чей период содержит дату и чья маска содержит день недели,
// побеждает правило с наибольшим приоритетом. При равных приоритетах
// побеждает правило, встретившееся в rules раньше. Если ни одно правило
// не подошло, возвращается defaultID
func ResolvePriceList(date time.Time, rules []domain.SeasonRule, defaultID string) string {
	best := -1
	for i := range rules {
		if !rules[i].Matches(date) {
			continue
		}
		if best == -1 || rules[i].Priority > rules[best].Priority {
			best = i
		}
	}
	if best == -1 {
		return defaultID
	}
	return rules[best].PriceListID
}
