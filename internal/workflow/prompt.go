package workflow

import (
	"fmt"
	"math"
	"strconv"
)

// promptTyped asks the same question until the answer casts cleanly. Each
// failed cast shows the operator an invalid-entry notice quoting what they
// typed, then asks again. There is no attempt limit.
func promptTyped[T any](w *Workflow, title, prompt string, cast func(string) (T, error)) (T, error) {
	var zero T
	for {
		raw, err := w.operator.PromptText(title, prompt)
		if err != nil {
			return zero, err
		}
		v, err := cast(raw)
		if err == nil {
			return v, nil
		}
		if err := w.operator.Notify(title, fmt.Sprintf("Invalid entry '%s'", raw)); err != nil {
			return zero, err
		}
	}
}

// castCount parses a whole, non-negative quantity.
func castCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

// castWeight parses a weight in grams. Negative, infinite and NaN values are
// rejected; ParseFloat accepts the latter two as literals.
func castWeight(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("unusable weight %v", f)
	}
	return f, nil
}
