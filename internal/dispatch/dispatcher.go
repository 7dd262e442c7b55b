package dispatch

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"receiptomatic/internal/domain"
)

// Dispatcher prints one document at a time on a single sink. The counter
// workflow is sequential, but the mutex keeps the open-print-close cycle
// exclusive should a second caller ever dispatch concurrently.
type Dispatcher struct {
	mu   sync.Mutex
	sink domain.Sink
	log  *zap.Logger
}

var _ domain.Dispatcher = (*Dispatcher)(nil)

// New returns a Dispatcher printing to sink.
func New(sink domain.Sink, log *zap.Logger) *Dispatcher {
	return &Dispatcher{sink: sink, log: log}
}

// Dispatch opens the sink, renders doc section by section, cuts and closes.
// The first failure aborts the job and is returned; a close failure is
// reported only when the job itself succeeded. There are no retries.
func (d *Dispatcher) Dispatch(doc domain.Document) (err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	log := d.log.With(
		zap.String("job_id", uuid.NewString()),
		zap.String("kind", doc.Kind),
	)
	log.Info("dispatching receipt", zap.Int("sections", len(doc.Sections)))

	if err := d.sink.Open(); err != nil {
		return fmt.Errorf("open printer: %w", err)
	}
	defer func() {
		if cerr := d.sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close printer: %w", cerr)
		}
	}()

	if err := d.render(doc); err != nil {
		return err
	}
	if err := d.sink.Cut(); err != nil {
		return fmt.Errorf("cut: %w", err)
	}
	log.Info("receipt dispatched")
	return nil
}

type style struct {
	align   domain.Alignment
	doubled bool
}

func (d *Dispatcher) render(doc domain.Document) error {
	var cur style
	styled := false
	set := func(s style) error {
		// Only push a style command when the style actually changes.
		if styled && s == cur {
			return nil
		}
		if err := d.sink.SetStyle(s.align, s.doubled); err != nil {
			return fmt.Errorf("set style: %w", err)
		}
		cur, styled = s, true
		return nil
	}

	for _, section := range doc.Sections {
		switch s := section.(type) {
		case domain.Header:
			if err := set(style{domain.AlignCenter, false}); err != nil {
				return err
			}
			if err := d.sink.Image(s.LogoPath); err != nil {
				return fmt.Errorf("print logo: %w", err)
			}
			if err := d.sink.Text(s.Title + "\n"); err != nil {
				return fmt.Errorf("print header: %w", err)
			}
		case domain.Line:
			if err := set(style{s.Align, s.Doubled}); err != nil {
				return err
			}
			if err := d.sink.Text(s.Text + "\n"); err != nil {
				return fmt.Errorf("print line: %w", err)
			}
		case domain.Footer:
			if err := d.sink.Text("\n\n"); err != nil {
				return fmt.Errorf("print footer: %w", err)
			}
		default:
			return fmt.Errorf("unknown receipt section %T", section)
		}
	}
	return nil
}
