// Package span parses identifier length ranges written as "<min>-<max>".
package span

import (
	"fmt"
	"strconv"
	"strings"
)

// Span is an inclusive identifier length range.
type Span struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// String formats the span the way it is accepted on the command line.
func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Min, s.Max)
}

// Validate checks that 1 <= Min <= Max.
func (s Span) Validate(label string) error {
	if s.Min < 1 || s.Max < s.Min {
		return &RangeError{Label: label, Min: s.Min, Max: s.Max}
	}
	return nil
}

// FormatError reports an expression that is not "<int>-<int>".
type FormatError struct {
	Label string
	Expr  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s must be in 'min-max' format, got %q", e.Label, e.Expr)
}

// RangeError reports a span with min < 1 or max < min.
type RangeError struct {
	Label string
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s has an invalid range: %d-%d (need 1 <= min <= max)", e.Label, e.Min, e.Max)
}

// Parse parses expr, returning fallback when expr is empty.
func Parse(expr string, fallback Span, label string) (Span, error) {
	if strings.TrimSpace(expr) == "" {
		return fallback, nil
	}

	lo, hi, ok := strings.Cut(expr, "-")
	if !ok {
		return Span{}, &FormatError{Label: label, Expr: expr}
	}
	minLen, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Span{}, &FormatError{Label: label, Expr: expr}
	}
	maxLen, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Span{}, &FormatError{Label: label, Expr: expr}
	}

	s := Span{Min: minLen, Max: maxLen}
	if err := s.Validate(label); err != nil {
		return Span{}, err
	}
	return s, nil
}
