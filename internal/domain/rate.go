package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrNegativeRate возвращается, если ставка или сбор отрицательные
var ErrNegativeRate = errors.New("domain: rate fields must be non-negative")

// PriceList именованный набор цен ("standard", "december", ...)
type PriceList struct {
	ID   string
	Name string
}

// RateRecord ставки зала в рамках одного прайс-листа.
// Уникален по паре (HallID, PriceListID)
type RateRecord struct {
	HallID      int64
	PriceListID string

	WeekdayRate10To22  float64 // Будни, начало с 10:00 до 22:00, за час
	WeekdayRate22To00  float64 // Будни, начало после 22:00, за час
	FridaySaturdayRate float64 // Пятница вечер и суббота, за час
	SundayRate         float64 // Воскресенье, за час

	CleaningFeeUpTo30Guests float64
	CleaningFeeOver30Guests float64
	AfterHoursHourlyFee     float64 // Доплата за час вне рабочего окна

	MinimumHours                  float64
	MinimumHoursOnSaturday        *float64 // nil = как MinimumHours
	MinimumHoursBeforeFoodAlcohol float64  // Минимум часов, при котором разрешены еда и алкоголь
}

// SaturdayMinimumHours минимальная длительность аренды в субботу
func (r *RateRecord) SaturdayMinimumHours() float64 {
	if r.MinimumHoursOnSaturday == nil {
		return r.MinimumHours
	}
	return *r.MinimumHoursOnSaturday
}

// MinimumHoursFor минимальная длительность аренды для дня недели
func (r *RateRecord) MinimumHoursFor(weekday time.Weekday) float64 {
	if weekday == time.Saturday {
		return r.SaturdayMinimumHours()
	}
	return r.MinimumHours
}

// Validate проверяет, что все ставки и сборы неотрицательны
func (r *RateRecord) Validate() error {
	fields := map[string]float64{
		"weekdayRate10To22":             r.WeekdayRate10To22,
		"weekdayRate22To00":             r.WeekdayRate22To00,
		"fridaySaturdayRate":            r.FridaySaturdayRate,
		"sundayRate":                    r.SundayRate,
		"cleaningFeeUpTo30Guests":       r.CleaningFeeUpTo30Guests,
		"cleaningFeeOver30Guests":       r.CleaningFeeOver30Guests,
		"afterHoursHourlyFee":           r.AfterHoursHourlyFee,
		"minimumHours":                  r.MinimumHours,
		"minimumHoursBeforeFoodAlcohol": r.MinimumHoursBeforeFoodAlcohol,
	}
	for name, value := range fields {
		if value < 0 {
			return fmt.Errorf("%w: %s=%v", ErrNegativeRate, name, value)
		}
	}
	if r.MinimumHoursOnSaturday != nil && *r.MinimumHoursOnSaturday < 0 {
		return fmt.Errorf("%w: minimumHoursOnSaturday=%v", ErrNegativeRate, *r.MinimumHoursOnSaturday)
	}
	return nil
}
