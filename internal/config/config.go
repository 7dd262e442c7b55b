// Package config loads the counter's settings file.
//
// Settings live in a small TOML file edited by library staff, not by the
// program. Load reads it once at startup, validates it and produces the
// immutable domain.RateConfig the rest of the app is wired with. A bad
// settings file is fatal before any interaction starts.
package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"receiptomatic/internal/domain"
)

// DefaultPath is where the settings file is looked up when no flag
// overrides it.
const DefaultPath = "settings.toml"

// defaultLogoPath is resolved relative to the settings file, so the logo
// ships alongside the configuration.
const defaultLogoPath = "assets/makeit.png"

var (
	ErrMissingPort     = errors.New("SERIAL_PORT is missing or empty")
	ErrMissingRate     = errors.New("rate is missing")
	ErrNonFiniteRate   = errors.New("rate must be a finite number")
	ErrNonPositiveRate = errors.New("rate must be positive")
)

// fileConfig mirrors the settings file. Rates are pointers so an absent key
// is distinguishable from an explicit zero.
type fileConfig struct {
	SerialPort      string   `toml:"SERIAL_PORT"`
	SublimationRate *float64 `toml:"SUBLIMATION_RATE"`
	MugRate         *float64 `toml:"MUG_RATE"`
	FilamentRate    *float64 `toml:"FILAMENT_RATE"`
	LogoPath        string   `toml:"LOGO_PATH"`
}

// Load reads and validates the settings file at path. Relative logo paths
// are resolved against the settings file's directory.
func Load(path string) (domain.RateConfig, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return domain.RateConfig{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	if strings.TrimSpace(fc.SerialPort) == "" {
		return domain.RateConfig{}, ErrMissingPort
	}
	sub, err := rate("SUBLIMATION_RATE", fc.SublimationRate)
	if err != nil {
		return domain.RateConfig{}, err
	}
	mug, err := rate("MUG_RATE", fc.MugRate)
	if err != nil {
		return domain.RateConfig{}, err
	}
	filament, err := rate("FILAMENT_RATE", fc.FilamentRate)
	if err != nil {
		return domain.RateConfig{}, err
	}

	logo := fc.LogoPath
	if logo == "" {
		logo = defaultLogoPath
	}
	if !filepath.IsAbs(logo) {
		logo = filepath.Join(filepath.Dir(path), logo)
	}

	return domain.RateConfig{
		SublimationRate: sub,
		MugRate:         mug,
		FilamentRate:    filament,
		SerialPort:      fc.SerialPort,
		LogoPath:        logo,
	}, nil
}

func rate(key string, v *float64) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Decimal{}, fmt.Errorf("%s: %w", key, ErrMissingRate)
	}
	// nan and inf are valid TOML floats; decimal conversion panics on them.
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return decimal.Decimal{}, fmt.Errorf("%s = %v: %w", key, *v, ErrNonFiniteRate)
	}
	if *v <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%s = %v: %w", key, *v, ErrNonPositiveRate)
	}
	return decimal.NewFromFloat(*v), nil
}
