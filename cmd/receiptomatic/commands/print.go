package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"receiptomatic/internal/domain"
)

func printCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print one receipt from flags, without the menu",
	}
	cmd.AddCommand(threedpCmd(), sublimationCmd())
	return cmd
}

func threedpCmd() *cobra.Command {
	var (
		name   string
		weight float64
	)
	cmd := &cobra.Command{
		Use:   "threedp",
		Short: "Print a 3D print job receipt",
		RunE: func(cmd *cobra.Command, args []string) error {
			if weight < 0 || math.IsInf(weight, 0) || math.IsNaN(weight) {
				return fmt.Errorf("weight must be a non-negative number of grams")
			}
			doc := appCtx.Composer.Compose3DPrint(domain.PrintJob{PatronName: name, WeightGrams: weight})
			if err := appCtx.Dispatcher.Dispatch(doc); err != nil {
				return err
			}
			fmt.Println("Receipt printed")
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "patron's name")
	cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "finished weight in grams")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}

func sublimationCmd() *cobra.Command {
	var pages, mugs int
	cmd := &cobra.Command{
		Use:   "sublimation",
		Short: "Print a sublimation job receipt",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pages < 0 || mugs < 0 {
				return fmt.Errorf("pages and mugs must be non-negative")
			}
			doc := appCtx.Composer.ComposeSublimation(domain.SublimationJob{Pages: pages, Cups: mugs})
			if err := appCtx.Dispatcher.Dispatch(doc); err != nil {
				return err
			}
			fmt.Println("Receipt printed")
			return nil
		},
	}
	cmd.Flags().IntVarP(&pages, "pages", "p", 0, "pages of transfer paper printed")
	cmd.Flags().IntVarP(&mugs, "mugs", "m", 0, "mugs purchased")
	_ = cmd.MarkFlagRequired("pages")
	return cmd
}
