package app

import (
	"io"
	"os"

	"go.uber.org/zap"

	"receiptomatic/internal/config"
	"receiptomatic/internal/console"
	"receiptomatic/internal/dispatch"
	"receiptomatic/internal/domain"
	"receiptomatic/internal/escpos"
	"receiptomatic/internal/receipt"
	"receiptomatic/internal/term"
)

// New constructs the dependency graph from cfg. It fails when the settings
// file is missing or invalid; nothing touches the printer until a receipt is
// dispatched.
func New(cfg Config) (*App, error) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	var in io.Reader = cfg.In
	if in == nil {
		in = os.Stdin
	}
	var out io.Writer = cfg.Out
	if out == nil {
		out = os.Stdout
	}

	rates, err := config.Load(cfg.SettingsPath)
	if err != nil {
		return nil, err
	}

	// Dry runs render the receipt to the terminal instead of the device.
	var sink domain.Sink
	if cfg.DryRun {
		sink = console.New(out)
	} else {
		sink = escpos.New(rates.SerialPort)
	}

	return &App{
		Rates:      rates,
		Composer:   receipt.New(rates),
		Dispatcher: dispatch.New(sink, log),
		Operator:   term.New(in, out),
		Log:        log,
	}, nil
}
