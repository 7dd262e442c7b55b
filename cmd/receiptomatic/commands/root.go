package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"receiptomatic/internal/app"
	"receiptomatic/internal/config"
)

var (
	settingsPath string
	dryRun       bool
	verbose      bool

	logger *zap.Logger
	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "receiptomatic",
		Short: "Receipt printing point of sale for the library makerspace",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			if err != nil {
				return err
			}

			appCtx, err = app.New(app.Config{
				SettingsPath: settingsPath,
				DryRun:       dryRun,
				Log:          logger,
			})
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Workflow().Run()
		},
	}

	root.PersistentFlags().StringVarP(&settingsPath, "config", "c", config.DefaultPath, "settings file")
	root.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "render receipts to the terminal instead of the printer")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(printCmd(), ratesCmd())

	err := root.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}
