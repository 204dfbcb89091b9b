package payment

import "testing"

func TestPriceInCents(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{0.01, 1},
		{10, 1000},
		{1234.56, 123456},
		{0, 0},
	}
	for _, tc := range cases {
		if got := priceInCents(tc.price); got != tc.want {
			t.Errorf("priceInCents(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}
