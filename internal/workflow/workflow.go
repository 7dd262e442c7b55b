package workflow

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"receiptomatic/internal/domain"
	"receiptomatic/internal/receipt"
)

// state enumerates the session's positions. Transitions are returned by the
// state handlers; nothing dispatches dynamically.
type state int

const (
	stateMenu state = iota
	stateCollect3DPrint
	stateCollectSublimation
	statePrinting
	stateTerminated
)

const (
	menuTitle  = "Receipt-O-Matic"
	menuPrompt = "Select an option..."

	title3DPrint     = "3D Print Job"
	titleSublimation = "Sublimation"
)

const (
	key3DPrint     = "3dp"
	keySublimation = "sublimation"
	keyQuit        = "quit"
)

var menuOptions = []domain.Option{
	{Label: "3D Printing", Key: key3DPrint},
	{Label: "Sublimation", Key: keySublimation},
	{Label: "Quit", Key: keyQuit},
}

// Workflow owns one operator session from first menu to quit.
type Workflow struct {
	operator   domain.Operator
	composer   *receipt.Composer
	dispatcher domain.Dispatcher
	log        *zap.Logger

	// pending is the job collected by a collect state, composed and printed
	// by the printing state.
	pending any
}

// New returns a Workflow serving op, pricing with composer and printing
// through dispatcher.
func New(op domain.Operator, composer *receipt.Composer, dispatcher domain.Dispatcher, log *zap.Logger) *Workflow {
	return &Workflow{operator: op, composer: composer, dispatcher: dispatcher, log: log}
}

// Run steps the state machine until the operator quits. The operator closing
// the terminal ends the session cleanly; any other operator failure is
// returned.
func (w *Workflow) Run() error {
	w.log.Info("session started")
	for st := stateMenu; st != stateTerminated; {
		next, err := w.step(st)
		if err != nil {
			if errors.Is(err, io.EOF) {
				w.log.Info("operator closed the terminal")
				return nil
			}
			return err
		}
		st = next
	}
	w.log.Info("session ended")
	return nil
}

func (w *Workflow) step(st state) (state, error) {
	switch st {
	case stateMenu:
		return w.menu()
	case stateCollect3DPrint:
		return w.collect3DPrint()
	case stateCollectSublimation:
		return w.collectSublimation()
	case statePrinting:
		return w.print()
	default:
		return stateTerminated, fmt.Errorf("workflow in unknown state %d", st)
	}
}

func (w *Workflow) menu() (state, error) {
	key, err := w.operator.SelectOption(menuTitle, menuPrompt, menuOptions)
	if err != nil {
		return stateTerminated, err
	}
	switch key {
	case key3DPrint:
		return stateCollect3DPrint, nil
	case keySublimation:
		return stateCollectSublimation, nil
	case keyQuit:
		return stateTerminated, nil
	default:
		return stateMenu, nil
	}
}

func (w *Workflow) collect3DPrint() (state, error) {
	name, err := w.operator.PromptText(title3DPrint, "Enter Patron's Name:")
	if err != nil {
		return stateTerminated, err
	}
	weight, err := promptTyped(w, title3DPrint, "Enter the weight in grams:", castWeight)
	if err != nil {
		return stateTerminated, err
	}

	job := domain.PrintJob{PatronName: name, WeightGrams: weight}
	w.log.Info("3d print job entered",
		zap.String("patron", job.PatronName),
		zap.Float64("grams", job.WeightGrams),
	)
	w.pending = job
	return statePrinting, nil
}

func (w *Workflow) collectSublimation() (state, error) {
	pages, err := promptTyped(w, titleSublimation, "Enter the number of pages printed:", castCount)
	if err != nil {
		return stateTerminated, err
	}
	mugs, err := promptTyped(w, titleSublimation, "Enter the number of mugs purchased:", castCount)
	if err != nil {
		return stateTerminated, err
	}

	job := domain.SublimationJob{Pages: pages, Cups: mugs}
	w.log.Info("sublimation job entered",
		zap.Int("pages", job.Pages),
		zap.Int("mugs", job.Cups),
	)
	w.pending = job
	return statePrinting, nil
}

// print composes the pending job and dispatches the receipt. A failed print
// is reported to the operator and the session continues at the menu; the job
// is not retried.
func (w *Workflow) print() (state, error) {
	job := w.pending
	w.pending = nil

	var doc domain.Document
	switch j := job.(type) {
	case domain.PrintJob:
		doc = w.composer.Compose3DPrint(j)
	case domain.SublimationJob:
		doc = w.composer.ComposeSublimation(j)
	default:
		return stateTerminated, fmt.Errorf("printing state reached without a job")
	}

	if err := w.dispatcher.Dispatch(doc); err != nil {
		w.log.Error("receipt did not print", zap.String("kind", doc.Kind), zap.Error(err))
		if nerr := w.operator.Notify(menuTitle, fmt.Sprintf("Printing failed: %v", err)); nerr != nil {
			return stateTerminated, nerr
		}
	}
	return stateMenu, nil
}
