package share_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelglobal/planner/internal/budget"
	"github.com/travelglobal/planner/internal/domain"
	"github.com/travelglobal/planner/internal/share"
)

func intPtr(n int) *int { return &n }

func items() []domain.ItineraryItem {
	return []domain.ItineraryItem{
		{Location: domain.Location{ID: "1", Name: "Walt Disney World", Country: "USA"}, Order: 0},
		{Location: domain.Location{ID: "3", Name: "Disneyland Paris", Country: "France"}, Order: 1, Days: intPtr(3)},
		{Location: domain.Location{ID: "6", Name: "Paris", Country: "France"}, Order: 2},
	}
}

func TestText(t *testing.T) {
	got := share.Text(items(), "example.test")

	assert.Contains(t, got, "📍 Walt Disney World (USA)\n📍 Disneyland Paris (France)\n📍 Paris (France)")
	assert.Contains(t, got, "🌍 2 countries • 📅 7 days")
	assert.Contains(t, got, "Plan yours at example.test")
}

func TestText_Empty(t *testing.T) {
	assert.Equal(t, "", share.Text(nil, "example.test"))
}

func TestQRCode_IsPNG(t *testing.T) {
	b, err := share.QRCode(share.Text(items(), "example.test"), 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, img.Bounds().Dx(), 256)
}

func TestCard_IsPDF(t *testing.T) {
	usd, err := budget.LookupCurrency("USD")
	require.NoError(t, err)
	est, ok := budget.Estimate(items(), usd)
	require.True(t, ok)

	b, err := share.Card(items(), &est)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")), "missing PDF header")
}

func TestCard_WithoutBudget(t *testing.T) {
	b, err := share.Card(items(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
