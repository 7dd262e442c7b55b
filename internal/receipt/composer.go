package receipt

import (
	"fmt"

	"receiptomatic/internal/domain"
	"receiptomatic/internal/pricing"
)

// Title is the institution line printed under the logo on every receipt.
const Title = "Northville District Library"

// Composer builds receipt documents from jobs and the configured rates.
type Composer struct {
	rates domain.RateConfig
}

// New returns a Composer priced against rates.
func New(rates domain.RateConfig) *Composer {
	return &Composer{rates: rates}
}

func (c *Composer) header() domain.Header {
	return domain.Header{LogoPath: c.rates.LogoPath, Title: Title}
}

// ComposeSublimation builds the receipt for a sublimation sale. The mug lines
// are omitted when no mugs were sold; the cost still covers both line items.
func (c *Composer) ComposeSublimation(job domain.SublimationJob) domain.Document {
	cost := pricing.SublimationCost(job, c.rates)

	sections := []domain.Section{
		c.header(),
		domain.Line{Text: "Sublimation", Align: domain.AlignCenter},
		domain.Line{Align: domain.AlignCenter},
		domain.Line{Text: fmt.Sprintf("Pages:  %d", job.Pages), Doubled: true},
		domain.Line{Text: fmt.Sprintf("Rate:   $%s/page", pricing.FormatCurrency(c.rates.SublimationRate)), Doubled: true},
	}
	if job.Cups != 0 {
		sections = append(sections,
			domain.Line{Text: fmt.Sprintf("Mugs:   %d", job.Cups), Doubled: true},
			domain.Line{Text: fmt.Sprintf("Rate:   $%s/mug", pricing.FormatCurrency(c.rates.MugRate)), Doubled: true},
			domain.Line{Doubled: true},
		)
	}
	sections = append(sections,
		domain.Line{Text: fmt.Sprintf("Cost:   $%s", pricing.FormatCurrency(cost)), Doubled: true},
		domain.Line{Doubled: true},
		domain.Footer{},
	)

	return domain.Document{Kind: "sublimation", Sections: sections}
}

// Compose3DPrint builds the receipt for a 3D-printing sale. The weight and
// the per-gram rate print exactly as configured; only the final cost is
// rounded down to the nickel.
func (c *Composer) Compose3DPrint(job domain.PrintJob) domain.Document {
	cost := pricing.PrintCost(job, c.rates)

	sections := []domain.Section{
		c.header(),
		domain.Line{Text: "3D Print Job", Align: domain.AlignCenter},
		domain.Line{Align: domain.AlignCenter},
		domain.Line{Text: job.PatronName, Doubled: true},
		domain.Line{Doubled: true},
		domain.Line{Text: fmt.Sprintf("Weight: %vg", job.WeightGrams), Doubled: true},
		domain.Line{Text: fmt.Sprintf("Rate:   $%s/g", c.rates.FilamentRate), Doubled: true},
		domain.Line{Doubled: true},
		domain.Line{Text: fmt.Sprintf("Cost:   $%s", pricing.FormatCurrency(cost)), Doubled: true},
		domain.Line{Doubled: true},
		domain.Footer{},
	}

	return domain.Document{Kind: "3d-print", Sections: sections}
}
