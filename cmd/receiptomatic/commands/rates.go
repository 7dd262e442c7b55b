package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"receiptomatic/internal/pricing"
)

func ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show the configured rates and printer",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := appCtx.Rates
			// Rates display exactly as they do on receipts: page and mug
			// rates as currency, the filament rate verbatim.
			fmt.Printf("Sublimation: $%s/page\n", pricing.FormatCurrency(r.SublimationRate))
			fmt.Printf("Mugs:        $%s/mug\n", pricing.FormatCurrency(r.MugRate))
			fmt.Printf("Filament:    $%s/g\n", r.FilamentRate)
			fmt.Printf("Printer:     %s\n", r.SerialPort)
			fmt.Printf("Logo:        %s\n", r.LogoPath)
			return nil
		},
	}
}
