package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDiscountedPrice(t *testing.T) {
	cases := []struct {
		name     string
		price    string
		discount int
		want     string
	}{
		{"no discount", "100.00", 0, "100"},
		{"half off", "100.00", 50, "50"},
		{"full discount", "100.00", 100, "0"},
		{"rounds to cents", "89.90", 10, "80.91"},
		{"odd cents", "0.99", 33, "0.66"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{
				Price:    decimal.RequireFromString(tc.price),
				Discount: tc.discount,
			}
			got := p.DiscountedPrice()
			require.True(t, decimal.RequireFromString(tc.want).Equal(got),
				"want %s, got %s", tc.want, got)
		})
	}
}
