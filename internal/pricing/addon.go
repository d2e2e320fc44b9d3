package pricing

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

var (
	unitPeoplePattern = regexp.MustCompile(`(?i)(\d+)\s*чел`)
	firstIntPattern   = regexp.MustCompile(`\d+`)
)

// ParseUnitSize извлекает размер единицы тарификации (гостей на единицу)
// из описания вида "за 10 человек". Если "N чел" не найдено, берется первое
// число в строке, если чисел нет - 1
func ParseUnitSize(description string) int {
	if m := unitPeoplePattern.FindStringSubmatch(description); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	if m := firstIntPattern.FindString(description); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n > 0 {
			return n
		}
	}
	return 1
}

// UnitCost стоимость unitIndex-й (с нуля) выбранной единицы услуги.
// fixed и per_unit считаются только по базовой цене, complex: первая единица по базовой,
// следующие по цене дополнительной единицы
func UnitCost(pricingType domain.PricingType, record *domain.AddOnCostRecord, guests int, unitIndex int) (float64, error) {
	switch pricingType {
	case domain.PricingFixed:
		return record.Base(), nil
	case domain.PricingPerUnit:
		size := ParseUnitSize(record.Description())
		units := math.Ceil(float64(guests) / float64(size))
		return units * record.Base(), nil
	case domain.PricingComplex:
		if unitIndex == 0 {
			return firstUnitPrice(record), nil
		}
		return record.Additional(), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPricingType, pricingType)
	}
}

// AddOnCost стоимость quantity единиц услуги
func AddOnCost(pricingType domain.PricingType, record *domain.AddOnCostRecord, guests int, quantity int) (float64, error) {
	total := 0.0
	for i := 0; i < quantity; i++ {
		cost, err := UnitCost(pricingType, record, guests, i)
		if err != nil {
			return 0, err
		}
		total += cost
	}
	return total, nil
}

// firstUnitPrice базовая цена, а если ее нет - цена дополнительной единицы
func firstUnitPrice(record *domain.AddOnCostRecord) float64 {
	if record.Base() > 0 {
		return record.Base()
	}
	return record.Additional()
}
