package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2025-07-01", "2025-07-04", 3},
		{"one night", "2025-07-01", "2025-07-02", 1},
		{"same day", "2025-06-10", "2025-06-10", 0},
		{"inverted", "2025-06-12", "2025-06-10", 0},
		{"across month", "2025-01-30", "2025-02-02", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(date(t, tt.checkIn), date(t, tt.checkOut)))
		})
	}
}

func TestNights_PartialDayRoundsUp(t *testing.T) {
	in := time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)
	out := time.Date(2025, 7, 3, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, Nights(in, out))
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 597.0, TotalPrice(3, 199))
	assert.Equal(t, 0.0, TotalPrice(0, 199))
}

func TestTotalPrice_LinearInNights(t *testing.T) {
	for _, rate := range []float64{0, 1, 99.5, 199, 1250} {
		for n := 0; n < 30; n++ {
			assert.InDelta(t, rate, TotalPrice(n+1, rate)-TotalPrice(n, rate), 1e-9)
		}
	}
}

func TestBuildInvoice(t *testing.T) {
	inv := BuildInvoice(3, 200, DefaultTaxRate)

	assert.Equal(t, 600.0, inv.Subtotal)
	assert.InDelta(t, 60.0, inv.Tax, 1e-9)
	assert.InDelta(t, 660.0, inv.Total, 1e-9)
	assert.Equal(t, TotalPrice(3, 200), inv.Subtotal)
}
