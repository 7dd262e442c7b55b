package pricing

import (
	"github.com/shopspring/decimal"

	"receiptomatic/internal/domain"
)

// SublimationCost prices a sublimation job: transfer sheets plus mug blanks
// at their configured rates. Charged exactly as computed, never rounded.
func SublimationCost(job domain.SublimationJob, rates domain.RateConfig) decimal.Decimal {
	pages := decimal.NewFromInt(int64(job.Pages)).Mul(rates.SublimationRate)
	cups := decimal.NewFromInt(int64(job.Cups)).Mul(rates.MugRate)
	return pages.Add(cups)
}

// PrintCost prices a 3D print job by finished weight and applies the nickel
// rule to the result.
func PrintCost(job domain.PrintJob, rates domain.RateConfig) decimal.Decimal {
	raw := decimal.NewFromFloat(job.WeightGrams).Mul(rates.FilamentRate)
	return RoundDownToNickel(raw)
}
