package pricing

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// Input входные данные расчета в том виде, в каком их прислал клиент
type Input struct {
	HallID          int64
	Date            string // YYYY-MM-DD
	StartTime       string // HH:MM
	EndTime         string // HH:MM
	GuestsCount     int
	ExtraServiceIDs []int64 // Повтор ID = несколько единиц услуги
	FoodAlcohol     bool
}

// Result результат расчета.
// Нарушение бизнес-правил - это не ошибка, а Valid=false с кодом PolicyError
type Result struct {
	Valid bool
	Quote *domain.Quote
	Code  string
	Error string
}

// Calculator расчет стоимости аренды. Не хранит состояния, безопасен для конкурентного использования
type Calculator struct {
	policy Policy
}

// NewCalculator создает калькулятор с заданными границами тарификации
func NewCalculator(policy Policy) *Calculator {
	return &Calculator{policy: policy}
}

// dayStart начало суток, для категории следующего дня
const dayStart types.TimeString = "00:00"

type parsedInput struct {
	date       time.Time
	start, end types.TimeString
	quantities []addOnQuantity
}

type addOnQuantity struct {
	id       int64
	quantity int
}

// Calculate рассчитывает стоимость аренды по снимку цен table.
// ErrValidation и ErrNotFound возвращаются как ошибки, нарушения правил - в Result
func (c *Calculator) Calculate(in Input, table RateTable) (*Result, error) {
	// 1. Валидация входных данных
	parsed, err := parseInput(in)
	if err != nil {
		return nil, err
	}

	// 2. Выбор прайс-листа и ставок зала
	priceListID := ResolvePriceList(parsed.date, table.SeasonRules(), c.policy.DefaultPriceListID)
	var warnings []string

	rate, ok := table.RateRecord(in.HallID, priceListID)
	ratePriceListID := priceListID
	if !ok {
		rate, ok = table.RateRecord(in.HallID, c.policy.DefaultPriceListID)
		if !ok {
			return nil, fmt.Errorf("%w: hall %d has no rates under price list %q or %q",
				ErrNotFound, in.HallID, priceListID, c.policy.DefaultPriceListID)
		}
		ratePriceListID = c.policy.DefaultPriceListID
		warnings = append(warnings, fmt.Sprintf("hall has no rates under price list %q, %q rates applied",
			priceListID, c.policy.DefaultPriceListID))
	}

	for _, item := range parsed.quantities {
		if _, ok := table.AddOnService(item.id); !ok {
			return nil, fmt.Errorf("%w: extra service %d", ErrNotFound, item.id)
		}
	}

	// 3. Категория дня
	category := CategorizeDay(parsed.date, parsed.start, c.policy.FridayEveningFrom)

	// 4. Длительность и минимальное время аренды
	hours := Hours(parsed.start, parsed.end)
	minimum := rate.MinimumHoursFor(parsed.date.Weekday())
	if minimum <= 0 {
		minimum = c.policy.DefaultMinimumHours
	}
	if hours < minimum {
		return policyFailure(fmt.Sprintf("minimum rental is %s hours", formatHours(minimum))), nil
	}

	// 5-6. Часовая ставка и базовая стоимость
	baseRate := c.baseRate(category, parsed.start, rate)
	baseCost := round2(baseRate * hours)

	// 7. Уборка
	cleaningCost := rate.CleaningFeeOver30Guests
	if in.GuestsCount <= c.policy.CleaningGuestsThreshold {
		cleaningCost = rate.CleaningFeeUpTo30Guests
	}

	// 8. Доплата за время вне рабочего окна
	nextCategory := CategorizeDay(parsed.date.AddDate(0, 0, 1), dayStart, c.policy.FridayEveningFrom)
	afterHoursFee := round2(AfterHoursFee(parsed.start, parsed.end,
		c.policy.AfterHours[category], c.policy.AfterHours[nextCategory], rate.AfterHoursHourlyFee))

	// 9. Дополнительные услуги
	lines, addOnCost, addOnWarnings := c.addOns(parsed.quantities, priceListID, in.GuestsCount, table)
	warnings = append(warnings, addOnWarnings...)

	// 10. Итог
	total := round2(baseCost + cleaningCost + afterHoursFee + addOnCost)

	// 11. Еда и алкоголь
	if in.FoodAlcohol && hours < rate.MinimumHoursBeforeFoodAlcohol {
		return policyFailure(fmt.Sprintf("food and alcohol are allowed only for rentals of at least %s hours",
			formatHours(rate.MinimumHoursBeforeFoodAlcohol))), nil
	}

	return &Result{
		Valid: true,
		Quote: &domain.Quote{
			BasePrice:           baseRate,
			BillableHours:       hours,
			BaseCost:            baseCost,
			CleaningCost:        cleaningCost,
			AfterHoursFee:       afterHoursFee,
			AddOnCost:           addOnCost,
			Total:               total,
			DayCategory:         category,
			ResolvedPriceListID: priceListID,
			RatePriceListID:     ratePriceListID,
			AddOns:              lines,
			Warnings:            warnings,
		},
	}, nil
}

// baseRate часовая ставка для категории дня
func (c *Calculator) baseRate(category domain.DayCategory, start types.TimeString, rate *domain.RateRecord) float64 {
	switch category {
	case domain.DaySunday:
		return rate.SundayRate
	case domain.DayFridaySaturday:
		return rate.FridaySaturdayRate
	default:
		if !start.IsBefore(c.policy.LateWeekdayRateFrom) {
			return rate.WeekdayRate22To00
		}
		return rate.WeekdayRate10To22
	}
}

// addOns считает стоимость услуг. Услуга без цены в прайс-листе дает нулевую строку и предупреждение
func (c *Calculator) addOns(
	quantities []addOnQuantity,
	priceListID string,
	guests int,
	table RateTable,
) ([]domain.AddOnLine, float64, []string) {
	if len(quantities) == 0 {
		return nil, 0, nil
	}

	lines := make([]domain.AddOnLine, 0, len(quantities))
	var (
		total    float64
		warnings []string
	)

	for _, item := range quantities {
		service, _ := table.AddOnService(item.id)
		line := domain.AddOnLine{
			AddOnServiceID: service.ID,
			Name:           service.Name,
			PricingType:    service.PricingType,
			Quantity:       item.quantity,
		}

		record, ok := table.AddOnCostRecord(item.id, priceListID)
		if !ok || !record.IsUsable() {
			warnings = append(warnings, fmt.Sprintf("extra service %q has no price under price list %q and was counted as 0",
				service.Name, priceListID))
			lines = append(lines, line)
			continue
		}

		cost, err := AddOnCost(service.PricingType, record, guests, item.quantity)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("extra service %q has unsupported pricing type %q and was counted as 0",
				service.Name, service.PricingType))
			lines = append(lines, line)
			continue
		}

		line.Cost = round2(cost)
		total += line.Cost
		lines = append(lines, line)
	}

	return lines, round2(total), warnings
}

// ValidateInput проверяет входные данные без обращения к ценам
func ValidateInput(in Input) error {
	_, err := parseInput(in)
	return err
}

func parseInput(in Input) (*parsedInput, error) {
	if in.HallID <= 0 {
		return nil, fmt.Errorf("%w: hallId must be positive", ErrValidation)
	}
	if in.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	date, err := time.Parse(domain.DateFormat, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD: %v", ErrValidation, err)
	}
	if in.StartTime == "" || in.EndTime == "" {
		return nil, fmt.Errorf("%w: startTime and endTime are required", ErrValidation)
	}
	start, err := types.NewTimeStringFromString(in.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime must be HH:MM: %v", ErrValidation, err)
	}
	end, err := types.NewTimeStringFromString(in.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime must be HH:MM: %v", ErrValidation, err)
	}
	if in.GuestsCount <= 0 || in.GuestsCount > domain.MaxGuestsCount {
		return nil, fmt.Errorf("%w: guestsCount must be between 1 and %d", ErrValidation, domain.MaxGuestsCount)
	}
	if len(in.ExtraServiceIDs) > domain.MaxExtraServicesCount {
		return nil, fmt.Errorf("%w: at most %d extra services per quote", ErrValidation, domain.MaxExtraServicesCount)
	}

	quantities := make([]addOnQuantity, 0, len(in.ExtraServiceIDs))
	index := make(map[int64]int, len(in.ExtraServiceIDs))
	for _, id := range in.ExtraServiceIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: extraServiceIds must be positive", ErrValidation)
		}
		if i, ok := index[id]; ok {
			quantities[i].quantity++
			continue
		}
		index[id] = len(quantities)
		quantities = append(quantities, addOnQuantity{id: id, quantity: 1})
	}

	return &parsedInput{date: date, start: start, end: end, quantities: quantities}, nil
}

func policyFailure(message string) *Result {
	return &Result{Valid: false, Code: CodePolicy, Error: message}
}

func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
