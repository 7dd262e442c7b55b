package domain

import "github.com/shopspring/decimal"

// RateConfig holds the service rates and device settings loaded once at
// startup. It is read-only for the lifetime of the process and passed
// explicitly to the components that price and print jobs.
type RateConfig struct {
	SublimationRate decimal.Decimal // dollars per sheet of transfer paper
	MugRate         decimal.Decimal // dollars per mug blank
	FilamentRate    decimal.Decimal // dollars per gram of filament
	SerialPort      string          // printer device, e.g. /dev/ttyUSB0
	LogoPath        string          // header image printed on every receipt
}

// SublimationJob is a single sublimation sale: transfer sheets consumed while
// printing, plus optional mug blanks sold alongside. Built per interaction
// and discarded after the receipt prints.
type SublimationJob struct {
	Pages int
	Cups  int
}

// PrintJob is a single 3D-printing sale, billed by the finished weight of all
// parts. Same lifecycle as SublimationJob.
type PrintJob struct {
	PatronName  string
	WeightGrams float64
}
