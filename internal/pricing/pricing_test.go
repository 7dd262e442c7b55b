package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"receiptomatic/internal/domain"
	"receiptomatic/internal/pricing"
)

func TestRoundDownToNickel_Table(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.23, "1.20"},
		{1.27, "1.25"},
		{1.21, "1.20"},
		{1.24, "1.20"},
		{1.26, "1.25"},
		{1.29, "1.25"},
		{1.25, "1.25"},
		{1.20, "1.20"},
		{1.30, "1.30"},
		{1.2, "1.20"},  // single decimal digit: already valid
		{0, "0.00"},
		{1.122, "1.10"}, // rounds to 1.12 first, then down to the nickel
		{1.005, "1.00"}, // half-up tie at the cent: 1.01, then down
	}
	for _, c := range cases {
		got := pricing.RoundDownToNickel(decimal.NewFromFloat(c.in))
		if s := pricing.FormatCurrency(got); s != c.want {
			t.Errorf("RoundDownToNickel(%v) = %s, want %s", c.in, s, c.want)
		}
	}
}

func TestRoundDownToNickel_NickelFixedPoints(t *testing.T) {
	// Every multiple of 0.05 up to $20 must pass through unchanged.
	for cents := int64(0); cents <= 2000; cents += 5 {
		in := decimal.New(cents, -2)
		got := pricing.RoundDownToNickel(in)
		if !got.Equal(in) {
			t.Fatalf("RoundDownToNickel(%s) = %s, want unchanged", in, got)
		}
	}
}

func TestRoundDown_OtherPlaces(t *testing.T) {
	cases := []struct {
		in     float64
		places int32
		want   string
	}{
		{1.123, 3, "1.12"},  // last digit 3 -> 0
		{1.126, 3, "1.125"}, // last digit 6 -> 5
		{1.125, 3, "1.125"},
		{12.3, 0, "10"}, // rounds to 12, then down to a multiple of 5
	}
	for _, c := range cases {
		got := pricing.RoundDown(decimal.NewFromFloat(c.in), c.places)
		want, err := decimal.NewFromString(c.want)
		if err != nil {
			t.Fatalf("bad case %q: %v", c.want, err)
		}
		if !got.Equal(want) {
			t.Errorf("RoundDown(%v, %d) = %s, want %s", c.in, c.places, got, c.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.2, "1.20"},
		{1.25, "1.25"},
		{5, "5.00"},
		{0, "0.00"},
		{11, "11.00"},
	}
	for _, c := range cases {
		if got := pricing.FormatCurrency(decimal.NewFromFloat(c.in)); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCurrency_Idempotent(t *testing.T) {
	for _, in := range []float64{1.2, 1.25, 5, 0.05, 37.4} {
		first := pricing.FormatCurrency(decimal.NewFromFloat(in))
		parsed, err := decimal.NewFromString(first)
		if err != nil {
			t.Fatalf("parse %q: %v", first, err)
		}
		if again := pricing.FormatCurrency(parsed); again != first {
			t.Errorf("FormatCurrency not idempotent: %q then %q", first, again)
		}
	}
}

func testRates() domain.RateConfig {
	return domain.RateConfig{
		SublimationRate: decimal.NewFromFloat(0.10),
		MugRate:         decimal.NewFromFloat(5.00),
		FilamentRate:    decimal.NewFromFloat(0.03),
	}
}

func TestSublimationCost(t *testing.T) {
	rates := testRates()

	got := pricing.SublimationCost(domain.SublimationJob{Pages: 10}, rates)
	if s := pricing.FormatCurrency(got); s != "1.00" {
		t.Errorf("10 pages, no mugs = %s, want 1.00", s)
	}

	got = pricing.SublimationCost(domain.SublimationJob{Pages: 10, Cups: 2}, rates)
	if s := pricing.FormatCurrency(got); s != "11.00" {
		t.Errorf("10 pages, 2 mugs = %s, want 11.00", s)
	}
}

func TestPrintCost_AppliesNickelRule(t *testing.T) {
	// 37.4g * 0.03 = 1.122 -> 1.12 -> cent digit 2 drops to 0 -> 1.10.
	got := pricing.PrintCost(domain.PrintJob{PatronName: "Ada", WeightGrams: 37.4}, testRates())
	if s := pricing.FormatCurrency(got); s != "1.10" {
		t.Errorf("cost = %s, want 1.10", s)
	}
}
