// Package charset builds the ordered, duplicate free character sets that
// identifiers are drawn from.
package charset

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/d-kuro/dictgen/internal/pool"
)

// ASCII base sets.
const (
	Lower  = "abcdefghijklmnopqrstuvwxyz"
	Upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Alpha  = Lower + Upper
	Digits = "0123456789"
)

// Merge appends the runes of extra that are not yet in base, keeping the
// order of first appearance.
func Merge(base, extra []rune) []rune {
	seen := make(map[rune]struct{}, len(base)+len(extra))
	merged := make([]rune, 0, len(base)+len(extra))
	for _, r := range base {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		merged = append(merged, r)
	}
	for _, r := range extra {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		merged = append(merged, r)
	}
	return merged
}

// Compose merges base with the characters of the named pools. When
// lowercase is set the pool characters are lowercased first; base
// characters are never changed. Pool names must already be validated.
func Compose(base string, pools []string, lowercase bool) []rune {
	if len(pools) == 0 {
		return []rune(base)
	}

	extra := pool.Chars(pools)
	if lowercase {
		extra = cases.Lower(language.Und).String(extra)
	}
	return Merge([]rune(base), []rune(extra))
}
