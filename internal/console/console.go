// Package console renders receipts as plain text instead of driving the
// printer. It backs the dry-run mode: the same documents the dispatcher
// would send to hardware are approximated on an io.Writer as a 42-column
// paper slip.
package console

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"receiptomatic/internal/domain"
)

// slipWidth matches the 42-character line of the printer's normal font.
const slipWidth = 42

// Sink writes a textual approximation of a receipt. It implements
// domain.Sink; Open and Close are no-ops since there is no device.
type Sink struct {
	w     io.Writer
	align domain.Alignment
}

var _ domain.Sink = (*Sink)(nil)

// New returns a Sink rendering to w.
func New(w io.Writer) *Sink {
	return &Sink{w: w}
}

func (s *Sink) Open() error  { return nil }
func (s *Sink) Close() error { return nil }

// SetStyle records the alignment. Doubled text renders at normal size.
func (s *Sink) SetStyle(align domain.Alignment, doubled bool) error {
	s.align = align
	return nil
}

// Text renders the given text, centering complete lines when the current
// alignment is centered.
func (s *Sink) Text(text string) error {
	parts := strings.Split(text, "\n")
	for i, part := range parts {
		if i == len(parts)-1 {
			// Unterminated fragment; emit as-is.
			if part == "" {
				break
			}
			if _, err := io.WriteString(s.w, part); err != nil {
				return err
			}
			break
		}
		if _, err := io.WriteString(s.w, s.pad(part)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sink) pad(line string) string {
	if s.align != domain.AlignCenter || line == "" {
		return line
	}
	n := utf8.RuneCountInString(line)
	if n >= slipWidth {
		return line
	}
	return strings.Repeat(" ", (slipWidth-n)/2) + line
}

// Image renders a bracketed placeholder in place of the logo.
func (s *Sink) Image(path string) error {
	_, err := io.WriteString(s.w, s.pad("["+filepath.Base(path)+"]")+"\n")
	return err
}

// Cut draws a rule where the blade would cut.
func (s *Sink) Cut() error {
	_, err := fmt.Fprintln(s.w, strings.Repeat("-", slipWidth))
	return err
}
