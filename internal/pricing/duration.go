package pricing

import (
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// Hours фактическая длительность аренды в часах.
// Если end <= start, аренда переходит через полночь.
// Минимальная длительность здесь не применяется
func Hours(start, end types.TimeString) float64 {
	return float64(durationMinutes(start, end)) / 60
}

// AfterHoursFee доплата за часы аренды вне рабочих окон.
// window - окно дня начала аренды, next - окно следующего дня,
// оно применяется к части аренды после полуночи
func AfterHoursFee(start, end types.TimeString, window, next Window, hourlyFee float64) float64 {
	if hourlyFee <= 0 {
		return 0
	}
	return float64(outsideMinutes(start, end, window, next)) / 60 * hourlyFee
}

func durationMinutes(start, end types.TimeString) int {
	startMin, endMin := start.Minutes(), end.Minutes()
	if endMin <= startMin {
		endMin += minutesPerDay
	}
	return endMin - startMin
}

// outsideMinutes минуты аренды, не попадающие ни в одно из окон.
// Отсчет от полуночи дня начала, окно следующего дня сдвинуто на сутки.
// Окна могут пересекаться, если окно дня начала закрывается после полуночи
func outsideMinutes(start, end types.TimeString, window, next Window) int {
	from := start.Minutes()
	to := from + durationMinutes(start, end)

	nextOpen := next.OpenMinute + minutesPerDay
	nextClose := next.CloseMinute + minutesPerDay

	inside := overlapMinutes(from, to, window.OpenMinute, window.CloseMinute) +
		overlapMinutes(from, to, nextOpen, nextClose) -
		overlapMinutes(from, to, max(window.OpenMinute, nextOpen), min(window.CloseMinute, nextClose))
	return (to - from) - inside
}

func overlapMinutes(from, to, windowFrom, windowTo int) int {
	lo, hi := max(from, windowFrom), min(to, windowTo)
	if hi > lo {
		return hi - lo
	}
	return 0
}
