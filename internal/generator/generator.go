// Package generator produces unique random identifiers for one category.
package generator

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/d-kuro/dictgen/internal/span"
)

// Spec describes how to generate one dictionary.
type Spec struct {
	Category string
	Filename string
	Count    int
	Span     span.Span
	Pools    []string
	First    []rune
	Body     []rune
}

// Stats describes a finished generation run.
type Stats struct {
	// Rejected counts candidates dropped because they were already produced.
	Rejected int
}

// CapacityError reports a request for more unique identifiers than the
// charsets and length range can produce.
type CapacityError struct {
	Filename string
	Count    int
	Capacity uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: cannot generate %d unique identifiers, at most %d are possible with the configured charsets and span",
		e.Filename, e.Count, e.Capacity)
}

// Capacity returns how many distinct identifiers s can produce,
// saturating at math.MaxUint64.
func (s Spec) Capacity() uint64 {
	first := uint64(len(s.First))
	body := uint64(len(s.Body))
	if s.Span.Min < 1 || s.Span.Max < s.Span.Min {
		return 0
	}
	if body <= 1 {
		// Every length contributes |First| (or nothing past length 1 when Body is empty).
		lengths := uint64(s.Span.Max - s.Span.Min + 1)
		if body == 0 {
			if s.Span.Min > 1 {
				return 0
			}
			lengths = 1
		}
		hi, lo := bits.Mul64(first, lengths)
		if hi != 0 {
			return math.MaxUint64
		}
		return lo
	}

	var total uint64
	// count is |First| * |Body|^(length-1) for the current length.
	count := first
	for length := 1; length <= s.Span.Max; length++ {
		if length > 1 {
			hi, lo := bits.Mul64(count, body)
			if hi != 0 {
				return math.MaxUint64
			}
			count = lo
		}
		if length < s.Span.Min {
			continue
		}
		sum, carry := bits.Add64(total, count, 0)
		if carry != 0 {
			return math.MaxUint64
		}
		total = sum
	}
	return total
}

// Validate checks that generation can finish.
func (s Spec) Validate() error {
	if s.Count < 1 {
		return fmt.Errorf("%s: count must be at least 1, got %d", s.Filename, s.Count)
	}
	if err := s.Span.Validate(s.Filename); err != nil {
		return err
	}
	if len(s.First) == 0 || len(s.Body) == 0 {
		return fmt.Errorf("%s: first and body character sets must not be empty", s.Filename)
	}
	if capacity := s.Capacity(); uint64(s.Count) > capacity {
		return &CapacityError{Filename: s.Filename, Count: s.Count, Capacity: capacity}
	}
	return nil
}

// Generate draws spec.Count unique identifiers from src in generation order.
func Generate(src Source, spec Spec) []string {
	ids, _ := GenerateWithStats(src, spec)
	return ids
}

// GenerateWithStats is Generate that also reports rejected duplicates.
// spec must pass Validate, otherwise the loop may never finish.
func GenerateWithStats(src Source, spec Spec) ([]string, Stats) {
	var stats Stats
	ids := make([]string, 0, spec.Count)
	seen := make(map[string]struct{}, spec.Count)

	var sb strings.Builder
	for len(ids) < spec.Count {
		length := spec.Span.Min + src.IntN(spec.Span.Max-spec.Span.Min+1)

		sb.Reset()
		sb.WriteRune(spec.First[src.IntN(len(spec.First))])
		for i := 1; i < length; i++ {
			sb.WriteRune(spec.Body[src.IntN(len(spec.Body))])
		}

		candidate := sb.String()
		if _, dup := seen[candidate]; dup {
			stats.Rejected++
			continue
		}
		seen[candidate] = struct{}{}
		ids = append(ids, candidate)
	}
	return ids, stats
}
