package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

func TestParseUnitSize(t *testing.T) {
	tests := []struct {
		description string
		want        int
	}{
		{description: "за 10 человек", want: 10},
		{description: "15 чел.", want: 15},
		{description: "1 комплект на 20 чел", want: 20},
		{description: "комплект на 8", want: 8},
		{description: "за каждого", want: 1},
		{description: "", want: 1},
		{description: "0 человек", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseUnitSize(tt.description))
		})
	}
}

func TestUnitCost(t *testing.T) {
	t.Run("fixed returns base price", func(t *testing.T) {
		cost, err := UnitCost(domain.PricingFixed, &domain.AddOnCostRecord{BasePrice: float(1500)}, 25, 0)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, cost)
	})

	t.Run("fixed without prices is zero", func(t *testing.T) {
		cost, err := UnitCost(domain.PricingFixed, &domain.AddOnCostRecord{}, 25, 0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, cost)
	})

	t.Run("fixed ignores additional unit price", func(t *testing.T) {
		cost, err := UnitCost(domain.PricingFixed, &domain.AddOnCostRecord{AdditionalUnitPrice: float(1000)}, 25, 0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, cost)
	})

	t.Run("per unit ignores additional unit price", func(t *testing.T) {
		record := &domain.AddOnCostRecord{AdditionalUnitPrice: float(500), UnitDescription: text("за 10 человек")}
		cost, err := UnitCost(domain.PricingPerUnit, record, 21, 0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, cost)
	})

	t.Run("per unit rounds guests up", func(t *testing.T) {
		record := &domain.AddOnCostRecord{BasePrice: float(500), UnitDescription: text("за 10 человек")}
		cost, err := UnitCost(domain.PricingPerUnit, record, 21, 0)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, cost)
	})

	t.Run("per unit exact multiple", func(t *testing.T) {
		record := &domain.AddOnCostRecord{BasePrice: float(500), UnitDescription: text("за 10 человек")}
		cost, err := UnitCost(domain.PricingPerUnit, record, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, cost)
	})

	t.Run("per unit without description bills every guest", func(t *testing.T) {
		cost, err := UnitCost(domain.PricingPerUnit, &domain.AddOnCostRecord{BasePrice: float(100)}, 7, 0)
		require.NoError(t, err)
		assert.Equal(t, 700.0, cost)
	})

	t.Run("complex first and next units", func(t *testing.T) {
		record := &domain.AddOnCostRecord{BasePrice: float(1500), AdditionalUnitPrice: float(1000)}

		first, err := UnitCost(domain.PricingComplex, record, 25, 0)
		require.NoError(t, err)
		second, err := UnitCost(domain.PricingComplex, record, 25, 1)
		require.NoError(t, err)

		assert.Equal(t, 1500.0, first)
		assert.Equal(t, 1000.0, second)
	})

	t.Run("complex with only additional price stays priced", func(t *testing.T) {
		record := &domain.AddOnCostRecord{BasePrice: float(0), AdditionalUnitPrice: float(1000)}
		cost, err := UnitCost(domain.PricingComplex, record, 25, 0)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, cost)
	})

	t.Run("complex next unit without additional price is free", func(t *testing.T) {
		record := &domain.AddOnCostRecord{BasePrice: float(1500)}

		first, err := UnitCost(domain.PricingComplex, record, 25, 0)
		require.NoError(t, err)
		second, err := UnitCost(domain.PricingComplex, record, 25, 1)
		require.NoError(t, err)

		assert.Equal(t, 1500.0, first)
		assert.Equal(t, 0.0, second)
	})

	t.Run("complex with only additional price charges it for every unit", func(t *testing.T) {
		record := &domain.AddOnCostRecord{AdditionalUnitPrice: float(1000)}
		cost, err := AddOnCost(domain.PricingComplex, record, 25, 2)
		require.NoError(t, err)
		assert.Equal(t, 2000.0, cost)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := UnitCost("bundle", &domain.AddOnCostRecord{BasePrice: float(1)}, 1, 0)
		assert.ErrorIs(t, err, ErrUnknownPricingType)
	})
}

func TestAddOnCost_Quantity(t *testing.T) {
	hookah := &domain.AddOnCostRecord{BasePrice: float(1500), AdditionalUnitPrice: float(1000)}

	cost, err := AddOnCost(domain.PricingComplex, hookah, 25, 3)
	require.NoError(t, err)
	assert.Equal(t, 3500.0, cost)

	chairs := &domain.AddOnCostRecord{BasePrice: float(300)}
	cost, err = AddOnCost(domain.PricingFixed, chairs, 25, 2)
	require.NoError(t, err)
	assert.Equal(t, 600.0, cost)
}
