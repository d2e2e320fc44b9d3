package pricing

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

const armaloftID int64 = 1

// 2025-03-03 понедельник
var (
	monday   = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	tuesday  = time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	friday   = time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
)

func float(v float64) *float64 { return &v }

func text(v string) *string { return &v }

func armaloftRate(priceListID string) domain.RateRecord {
	return domain.RateRecord{
		HallID:                        armaloftID,
		PriceListID:                   priceListID,
		WeekdayRate10To22:             3000,
		WeekdayRate22To00:             3500,
		FridaySaturdayRate:            4500,
		SundayRate:                    4000,
		CleaningFeeUpTo30Guests:       2000,
		CleaningFeeOver30Guests:       3000,
		AfterHoursHourlyFee:           1000,
		MinimumHours:                  3,
		MinimumHoursBeforeFoodAlcohol: 4,
	}
}

func allDays() []time.Weekday {
	return []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}
}
