// Package term implements the operator front-end on a character terminal.
// Menus, prompts and notices are rendered to an io.Writer and answers read
// line by line from an io.Reader, stdin and stdout in production.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"receiptomatic/internal/domain"
)

// Operator drives the service counter dialogue over a reader/writer pair.
type Operator struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ domain.Operator = (*Operator)(nil)

// New returns an Operator reading answers from in and rendering to out.
func New(in io.Reader, out io.Writer) *Operator {
	return &Operator{scanner: bufio.NewScanner(in), out: out}
}

// readLine returns the next input line, trimmed. io.EOF means the operator
// closed the terminal.
func (o *Operator) readLine() (string, error) {
	if !o.scanner.Scan() {
		if err := o.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(o.scanner.Text()), nil
}

// SelectOption renders a numbered menu and blocks until the operator picks an
// entry. Out-of-range or non-numeric answers re-prompt without redrawing the
// menu. The chosen option's Key is returned.
func (o *Operator) SelectOption(title, prompt string, options []domain.Option) (string, error) {
	fmt.Fprintf(o.out, "\n%s\n%s\n", title, prompt)
	for i, opt := range options {
		fmt.Fprintf(o.out, "  %d) %s\n", i+1, opt.Label)
	}
	for {
		fmt.Fprint(o.out, "> ")
		line, err := o.readLine()
		if err != nil {
			return "", err
		}
		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Fprintf(o.out, "Invalid choice %q\n", line)
			continue
		}
		return options[choice-1].Key, nil
	}
}

// PromptText asks a single free-text question and returns the trimmed answer.
func (o *Operator) PromptText(title, prompt string) (string, error) {
	fmt.Fprintf(o.out, "\n%s\n%s ", title, prompt)
	return o.readLine()
}

// Notify shows a titled notice and returns once it is written.
func (o *Operator) Notify(title, message string) error {
	_, err := fmt.Fprintf(o.out, "\n%s: %s\n", title, message)
	return err
}
