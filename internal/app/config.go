package app

import (
	"io"

	"go.uber.org/zap"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	SettingsPath string      // settings file, e.g. settings.toml
	DryRun       bool        // render receipts to Out instead of the printer
	In           io.Reader   // operator input; defaults to os.Stdin
	Out          io.Writer   // operator output; defaults to os.Stdout
	Log          *zap.Logger // optional; defaults to a no-op logger
}
