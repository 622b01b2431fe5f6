package budget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelglobal/planner/internal/budget"
	"github.com/travelglobal/planner/internal/domain"
)

func intPtr(n int) *int { return &n }

func item(id, country string, days *int) domain.ItineraryItem {
	return domain.ItineraryItem{
		Location: domain.Location{ID: id, Name: id, Country: country},
		Days:     days,
	}
}

func usd(t *testing.T) budget.Currency {
	t.Helper()
	c, err := budget.LookupCurrency("USD")
	require.NoError(t, err)
	return c
}

func TestEstimate_EmptyItineraryIsSuppressed(t *testing.T) {
	_, ok := budget.Estimate(nil, usd(t))
	assert.False(t, ok)
}

// TestEstimate_USAThenFrance is the two-stop scenario: A in the USA with the
// default stay, B in France for three days.
func TestEstimate_USAThenFrance(t *testing.T) {
	items := []domain.ItineraryItem{
		item("A", "USA", nil),
		item("B", "France", intPtr(3)),
	}

	b, ok := budget.Estimate(items, usd(t))

	require.True(t, ok)
	require.Len(t, b.Items, 2)
	assert.Equal(t, 350+2*(180+80+120), b.Items[0].Total)
	assert.Equal(t, 2, b.Items[0].Days)
	assert.Equal(t, 500+3*(200+90+100), b.Items[1].Total)
	assert.Equal(t, 2780, b.GrandTotal)
	assert.Equal(t, 5, b.TotalDays)
	assert.Equal(t, 2, b.Countries)
	assert.Equal(t, budget.Costs{Flights: 850, Hotels: 960, Food: 430, Activities: 540}, b.Subtotals)
}

func TestEstimate_UnknownCountryUsesDefault(t *testing.T) {
	b, ok := budget.Estimate([]domain.ItineraryItem{item("x", "Atlantis", intPtr(4))}, usd(t))

	require.True(t, ok)
	d := budget.DefaultCosts
	assert.Equal(t, d.Flights+4*(d.Hotels+d.Food+d.Activities), b.GrandTotal)
}

func TestEstimate_GrandTotalIsSumOfLines(t *testing.T) {
	items := []domain.ItineraryItem{
		item("1", "Japan", intPtr(5)),
		item("2", "UAE", nil),
		item("3", "Peru", intPtr(1)),
		item("4", "Nowhere", intPtr(2)),
	}

	b, ok := budget.Estimate(items, usd(t))

	require.True(t, ok)
	sum := 0
	for _, line := range b.Items {
		base := budget.BaselineFor(line.Item.Country)
		assert.Equal(t, base.Flights+line.Days*(base.Hotels+base.Food+base.Activities), line.Total)
		sum += line.Total
	}
	assert.Equal(t, sum, b.GrandTotal)
	assert.Equal(t, b.Subtotals.Total(), b.GrandTotal)
}

func TestEstimate_DoesNotMutateInput(t *testing.T) {
	items := []domain.ItineraryItem{item("A", "USA", intPtr(3))}

	b, _ := budget.Estimate(items, usd(t))
	*b.Items[0].Item.Days = 10

	assert.Equal(t, 3, *items[0].Days)
}

func TestEstimate_Idempotent(t *testing.T) {
	items := []domain.ItineraryItem{item("A", "USA", nil), item("B", "Greece", intPtr(4))}

	first, _ := budget.Estimate(items, usd(t))
	second, _ := budget.Estimate(items, usd(t))

	assert.Equal(t, first, second)
}
