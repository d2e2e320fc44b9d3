package pricing

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

const (
	furnitureID int64 = 1
	dishesID    int64 = 2
	hookahID    int64 = 3
)

func testServices() []domain.AddOnService {
	return []domain.AddOnService{
		{ID: furnitureID, Name: "Доп. мебель", PricingType: domain.PricingFixed, IsActive: true},
		{ID: dishesID, Name: "Посуда", PricingType: domain.PricingPerUnit, IsActive: true},
		{ID: hookahID, Name: "Кальян", PricingType: domain.PricingComplex, IsActive: true},
	}
}

func testCosts(priceListID string) []domain.AddOnCostRecord {
	return []domain.AddOnCostRecord{
		{AddOnServiceID: furnitureID, PriceListID: priceListID, BasePrice: float(1500)},
		{AddOnServiceID: dishesID, PriceListID: priceListID, BasePrice: float(500), UnitDescription: text("за 10 человек")},
		{AddOnServiceID: hookahID, PriceListID: priceListID, BasePrice: float(1500), AdditionalUnitPrice: float(1000)},
	}
}

func standardSnapshot() *Snapshot {
	return NewSnapshot(
		nil,
		[]domain.RateRecord{armaloftRate(domain.DefaultPriceListID)},
		testServices(),
		testCosts(domain.DefaultPriceListID),
	)
}

func baseInput() Input {
	return Input{
		HallID:      armaloftID,
		Date:        tuesday.Format(domain.DateFormat),
		StartTime:   "12:00",
		EndTime:     "16:00",
		GuestsCount: 25,
	}
}

func TestCalculate_TuesdayAfternoon(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())

	result, err := calc.Calculate(baseInput(), standardSnapshot())
	require.NoError(t, err)
	require.True(t, result.Valid)

	want := &domain.Quote{
		BasePrice:           3000,
		BillableHours:       4,
		BaseCost:            12000,
		CleaningCost:        2000,
		AfterHoursFee:       0,
		AddOnCost:           0,
		Total:               14000,
		DayCategory:         domain.DayWeekday,
		ResolvedPriceListID: domain.DefaultPriceListID,
		RatePriceListID:     domain.DefaultPriceListID,
	}
	if diff := cmp.Diff(want, result.Quote); diff != "" {
		t.Errorf("quote mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_WithFixedAddOn(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())
	in := baseInput()
	in.ExtraServiceIDs = []int64{furnitureID}

	result, err := calc.Calculate(in, standardSnapshot())
	require.NoError(t, err)
	require.True(t, result.Valid)

	assert.Equal(t, 1500.0, result.Quote.AddOnCost)
	assert.Equal(t, 15500.0, result.Quote.Total)
	assert.Equal(t, []domain.AddOnLine{
		{AddOnServiceID: furnitureID, Name: "Доп. мебель", PricingType: domain.PricingFixed, Quantity: 1, Cost: 1500},
	}, result.Quote.AddOns)
	assert.Empty(t, result.Quote.Warnings)
}

func TestCalculate_AddOnQuantitiesAndPricingTypes(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())
	in := baseInput()
	in.GuestsCount = 21
	in.ExtraServiceIDs = []int64{hookahID, dishesID, hookahID, hookahID}

	result, err := calc.Calculate(in, standardSnapshot())
	require.NoError(t, err)
	require.True(t, result.Valid)

	assert.Equal(t, []domain.AddOnLine{
		{AddOnServiceID: hookahID, Name: "Кальян", PricingType: domain.PricingComplex, Quantity: 3, Cost: 3500},
		{AddOnServiceID: dishesID, Name: "Посуда", PricingType: domain.PricingPerUnit, Quantity: 1, Cost: 1500},
	}, result.Quote.AddOns)
	assert.Equal(t, 5000.0, result.Quote.AddOnCost)
	assert.Equal(t, 12000.0+2000.0+5000.0, result.Quote.Total)
}

func TestCalculate_DayCategoriesAndRates(t *testing.T) {
	tests := []struct {
		name         string
		date         time.Time
		start, end   string
		wantCategory domain.DayCategory
		wantRate     float64
		wantAfter    float64
		wantTotal    float64
	}{
		{
			name: "friday afternoon is weekday", date: friday, start: "13:00", end: "17:00",
			wantCategory: domain.DayWeekday, wantRate: 3000, wantTotal: 12000 + 2000,
		},
		{
			name: "friday before cutoff", date: friday, start: "16:59", end: "20:59",
			wantCategory: domain.DayWeekday, wantRate: 3000, wantTotal: 12000 + 2000,
		},
		{
			name: "friday evening", date: friday, start: "17:00", end: "21:00",
			wantCategory: domain.DayFridaySaturday, wantRate: 4500, wantTotal: 18000 + 2000,
		},
		{
			name: "saturday", date: saturday, start: "12:00", end: "16:00",
			wantCategory: domain.DayFridaySaturday, wantRate: 4500, wantTotal: 18000 + 2000,
		},
		{
			name: "sunday", date: sunday, start: "12:00", end: "16:00",
			wantCategory: domain.DaySunday, wantRate: 4000, wantTotal: 16000 + 2000,
		},
		{
			name: "weekday late start crosses midnight", date: tuesday, start: "22:00", end: "02:00",
			wantCategory: domain.DayWeekday, wantRate: 3500, wantAfter: 2000, wantTotal: 14000 + 2000 + 2000,
		},
		{
			name: "weekday morning before opening", date: monday, start: "08:00", end: "12:00",
			wantCategory: domain.DayWeekday, wantRate: 3000, wantAfter: 2000, wantTotal: 12000 + 2000 + 2000,
		},
	}

	calc := NewCalculator(DefaultPolicy())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			in.Date = tt.date.Format(domain.DateFormat)
			in.StartTime = tt.start
			in.EndTime = tt.end

			result, err := calc.Calculate(in, standardSnapshot())
			require.NoError(t, err)
			require.True(t, result.Valid, result.Error)

			assert.Equal(t, tt.wantCategory, result.Quote.DayCategory)
			assert.Equal(t, tt.wantRate, result.Quote.BasePrice)
			assert.Equal(t, 4.0, result.Quote.BillableHours)
			assert.Equal(t, tt.wantAfter, result.Quote.AfterHoursFee)
			assert.Equal(t, tt.wantTotal, result.Quote.Total)
		})
	}
}

func TestCalculate_OvernightUsesNextDayWindow(t *testing.T) {
	policy := DefaultPolicy()
	policy.AfterHours[domain.DaySunday] = Window{OpenMinute: 12 * 60, CloseMinute: 24 * 60}

	in := baseInput()
	in.Date = saturday.Format(domain.DateFormat)
	in.StartTime = "23:00"
	in.EndTime = "13:00"

	result, err := NewCalculator(policy).Calculate(in, standardSnapshot())
	require.NoError(t, err)
	require.True(t, result.Valid, result.Error)

	assert.Equal(t, domain.DayFridaySaturday, result.Quote.DayCategory)
	assert.Equal(t, 14.0, result.Quote.BillableHours)
	// 23:00-24:00 в окне субботы, 12:00-13:00 в окне воскресенья
	assert.Equal(t, 12000.0, result.Quote.AfterHoursFee)
}

func TestCalculate_CleaningFeeThreshold(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())

	in := baseInput()
	in.GuestsCount = 30
	result, err := calc.Calculate(in, standardSnapshot())
	require.NoError(t, err)
	assert.Equal(t, 2000.0, result.Quote.CleaningCost)

	in.GuestsCount = 31
	result, err = calc.Calculate(in, standardSnapshot())
	require.NoError(t, err)
	assert.Equal(t, 3000.0, result.Quote.CleaningCost)
}

func TestCalculate_PolicyFailures(t *testing.T) {
	saturdayFive := armaloftRate(domain.DefaultPriceListID)
	saturdayFive.MinimumHoursOnSaturday = float(5)

	noMinimum := armaloftRate(domain.DefaultPriceListID)
	noMinimum.MinimumHours = 0

	tests := []struct {
		name      string
		rate      domain.RateRecord
		mutate    func(in *Input)
		wantError string
	}{
		{
			name: "shorter than hall minimum",
			rate: armaloftRate(domain.DefaultPriceListID),
			mutate: func(in *Input) {
				in.EndTime = "14:00"
			},
			wantError: "minimum rental is 3 hours",
		},
		{
			name: "saturday minimum",
			rate: saturdayFive,
			mutate: func(in *Input) {
				in.Date = saturday.Format(domain.DateFormat)
			},
			wantError: "minimum rental is 5 hours",
		},
		{
			name: "zero minimum falls back to default",
			rate: noMinimum,
			mutate: func(in *Input) {
				in.EndTime = "13:00"
			},
			wantError: "minimum rental is 2 hours",
		},
		{
			name: "food and alcohol on a short rental",
			rate: armaloftRate(domain.DefaultPriceListID),
			mutate: func(in *Input) {
				in.EndTime = "15:30"
				in.FoodAlcohol = true
			},
			wantError: "food and alcohol are allowed only for rentals of at least 4 hours",
		},
	}

	calc := NewCalculator(DefaultPolicy())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewSnapshot(nil, []domain.RateRecord{tt.rate}, testServices(), testCosts(domain.DefaultPriceListID))
			in := baseInput()
			tt.mutate(&in)

			result, err := calc.Calculate(in, table)
			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.Nil(t, result.Quote)
			assert.Equal(t, CodePolicy, result.Code)
			assert.Equal(t, tt.wantError, result.Error)
		})
	}
}

func TestCalculate_SaturdayMinimumDoesNotApplyOnFriday(t *testing.T) {
	rate := armaloftRate(domain.DefaultPriceListID)
	rate.MinimumHoursOnSaturday = float(5)
	table := NewSnapshot(nil, []domain.RateRecord{rate}, nil, nil)

	in := baseInput()
	in.Date = friday.Format(domain.DateFormat)
	in.StartTime = "18:00"
	in.EndTime = "22:00"

	result, err := NewCalculator(DefaultPolicy()).Calculate(in, table)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestCalculate_FoodAlcoholAllowedOnLongRental(t *testing.T) {
	in := baseInput()
	in.FoodAlcohol = true

	result, err := NewCalculator(DefaultPolicy()).Calculate(in, standardSnapshot())
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 14000.0, result.Quote.Total)
}

func TestCalculate_SeasonalPriceList(t *testing.T) {
	march := domain.SeasonRule{
		ID:          1,
		PriceListID: "march",
		StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		DaysOfWeek:  allDays(),
		Priority:    1,
	}
	marchRate := armaloftRate("march")
	marchRate.WeekdayRate10To22 = 5000

	t.Run("rates of resolved price list", func(t *testing.T) {
		table := NewSnapshot(
			[]domain.SeasonRule{march},
			[]domain.RateRecord{armaloftRate(domain.DefaultPriceListID), marchRate},
			testServices(),
			testCosts("march"),
		)
		in := baseInput()
		in.ExtraServiceIDs = []int64{furnitureID}

		result, err := NewCalculator(DefaultPolicy()).Calculate(in, table)
		require.NoError(t, err)
		require.True(t, result.Valid)
		assert.Equal(t, "march", result.Quote.ResolvedPriceListID)
		assert.Equal(t, "march", result.Quote.RatePriceListID)
		assert.Equal(t, 20000.0+2000.0+1500.0, result.Quote.Total)
		assert.Empty(t, result.Quote.Warnings)
	})

	t.Run("missing hall rates fall back to default list", func(t *testing.T) {
		table := NewSnapshot(
			[]domain.SeasonRule{march},
			[]domain.RateRecord{armaloftRate(domain.DefaultPriceListID)},
			testServices(),
			testCosts("march"),
		)

		result, err := NewCalculator(DefaultPolicy()).Calculate(baseInput(), table)
		require.NoError(t, err)
		require.True(t, result.Valid)
		assert.Equal(t, "march", result.Quote.ResolvedPriceListID)
		assert.Equal(t, domain.DefaultPriceListID, result.Quote.RatePriceListID)
		assert.Equal(t, 14000.0, result.Quote.Total)
		require.Len(t, result.Quote.Warnings, 1)
		assert.Contains(t, result.Quote.Warnings[0], `"march"`)
	})

	t.Run("add-on without price under resolved list is zero", func(t *testing.T) {
		table := NewSnapshot(
			[]domain.SeasonRule{march},
			[]domain.RateRecord{marchRate},
			testServices(),
			testCosts(domain.DefaultPriceListID),
		)
		in := baseInput()
		in.ExtraServiceIDs = []int64{furnitureID}

		result, err := NewCalculator(DefaultPolicy()).Calculate(in, table)
		require.NoError(t, err)
		require.True(t, result.Valid)
		assert.Equal(t, 0.0, result.Quote.AddOnCost)
		require.Len(t, result.Quote.AddOns, 1)
		assert.Equal(t, 0.0, result.Quote.AddOns[0].Cost)
		require.Len(t, result.Quote.Warnings, 1)
		assert.Contains(t, result.Quote.Warnings[0], "Доп. мебель")
	})
}

func TestCalculate_UnusableAddOnRecord(t *testing.T) {
	costs := []domain.AddOnCostRecord{{AddOnServiceID: furnitureID, PriceListID: domain.DefaultPriceListID, BasePrice: float(0)}}
	table := NewSnapshot(nil, []domain.RateRecord{armaloftRate(domain.DefaultPriceListID)}, testServices(), costs)

	in := baseInput()
	in.ExtraServiceIDs = []int64{furnitureID}

	result, err := NewCalculator(DefaultPolicy()).Calculate(in, table)
	require.NoError(t, err)
	require.True(t, result.Valid)
	assert.Equal(t, 14000.0, result.Quote.Total)
	assert.Len(t, result.Quote.Warnings, 1)
}

func TestCalculate_NotFound(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())

	t.Run("hall without rates", func(t *testing.T) {
		in := baseInput()
		in.HallID = 42

		_, err := calc.Calculate(in, standardSnapshot())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, CodeNotFound, ErrorCode(err))
	})

	t.Run("unknown extra service", func(t *testing.T) {
		in := baseInput()
		in.ExtraServiceIDs = []int64{furnitureID, 99}

		_, err := calc.Calculate(in, standardSnapshot())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCalculate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *Input)
	}{
		{name: "missing hall", mutate: func(in *Input) { in.HallID = 0 }},
		{name: "missing date", mutate: func(in *Input) { in.Date = "" }},
		{name: "bad date", mutate: func(in *Input) { in.Date = "2025-13-01" }},
		{name: "date in wrong format", mutate: func(in *Input) { in.Date = "04.03.2025" }},
		{name: "missing start", mutate: func(in *Input) { in.StartTime = "" }},
		{name: "bad end", mutate: func(in *Input) { in.EndTime = "25:00" }},
		{name: "zero guests", mutate: func(in *Input) { in.GuestsCount = 0 }},
		{name: "too many guests", mutate: func(in *Input) { in.GuestsCount = domain.MaxGuestsCount + 1 }},
		{name: "non-positive extra id", mutate: func(in *Input) { in.ExtraServiceIDs = []int64{-1} }},
	}

	calc := NewCalculator(DefaultPolicy())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			tt.mutate(&in)

			result, err := calc.Calculate(in, standardSnapshot())
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, CodeValidation, ErrorCode(err))
		})
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())
	table := standardSnapshot()
	in := baseInput()
	in.ExtraServiceIDs = []int64{hookahID, hookahID, dishesID}

	first, err := calc.Calculate(in, table)
	require.NoError(t, err)
	second, err := calc.Calculate(in, table)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated calculation differs (-first +second):\n%s", diff)
	}
}

func TestPolicy_Validate(t *testing.T) {
	require.NoError(t, DefaultPolicy().Validate())

	tests := []struct {
		name   string
		mutate func(p *Policy)
	}{
		{name: "empty default list", mutate: func(p *Policy) { p.DefaultPriceListID = "" }},
		{name: "bad friday cutoff", mutate: func(p *Policy) { p.FridayEveningFrom = "5pm" }},
		{name: "bad late rate start", mutate: func(p *Policy) { p.LateWeekdayRateFrom = "" }},
		{name: "negative minimum", mutate: func(p *Policy) { p.DefaultMinimumHours = -1 }},
		{name: "missing window", mutate: func(p *Policy) { delete(p.AfterHours, domain.DaySunday) }},
		{name: "inverted window", mutate: func(p *Policy) {
			p.AfterHours[domain.DayWeekday] = Window{OpenMinute: 600, CloseMinute: 500}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidPolicy)
		})
	}
}
