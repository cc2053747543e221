package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		checkIn  string
		checkOut string
		want     string
	}{
		{name: "one night", price: "100.00", checkIn: "2024-06-10", checkOut: "2024-06-11", want: "100"},
		{name: "five nights", price: "100.00", checkIn: "2024-06-10", checkOut: "2024-06-15", want: "500"},
		{name: "fractional rate", price: "89.99", checkIn: "2024-06-10", checkOut: "2024-06-13", want: "269.97"},
		{name: "rounds half away from zero", price: "0.005", checkIn: "2024-06-10", checkOut: "2024-06-11", want: "0.01"},
		{name: "across month", price: "50", checkIn: "2024-06-29", checkOut: "2024-07-02", want: "150"},
		{name: "same day is zero", price: "100", checkIn: "2024-06-10", checkOut: "2024-06-10", want: "0"},
		{name: "reversed range is zero", price: "100", checkIn: "2024-06-15", checkOut: "2024-06-10", want: "0"},
		{name: "free room", price: "0", checkIn: "2024-06-10", checkOut: "2024-06-12", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(
				decimal.RequireFromString(tt.price),
				domain.MustParseDate(tt.checkIn),
				domain.MustParseDate(tt.checkOut),
			)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCalculate_EqualsRateTimesNights(t *testing.T) {
	rate := decimal.RequireFromString("123.45")
	in := domain.MustParseDate("2024-01-01")

	for n := 1; n <= 30; n++ {
		out := in.AddDays(n)
		assert.Equal(t, n, Nights(in, out))
		assert.True(t, rate.Mul(decimal.NewFromInt(int64(n))).Equal(Calculate(rate, in, out)))
	}
}
