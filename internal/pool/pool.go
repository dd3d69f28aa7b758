// Package pool holds the built-in Unicode character pools that can be mixed
// into generated identifiers.
package pool

import (
	"fmt"
	"slices"
	"strings"

	"github.com/d-kuro/dictgen/pkg/utils"
)

// Pool is a named set of characters valid as Java identifier starts.
type Pool struct {
	Name  string
	Chars string
}

// SampleSize is the number of characters shown when listing pools.
const SampleSize = 12

var pools = map[string]string{
	"greek":    "αβγδεζηθικλμνξοπρστυφχψωΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ",
	"cyrillic": "абвгдеёжзийклмнопрстуфхцчшщъыьэюяАБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ",
	"hiragana": "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめもやゆよらりるれろわをん",
	"katakana": "アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン",
	"bopomofo": "ㄅㄆㄇㄈㄉㄊㄋㄌㄍㄎㄏㄐㄑㄒㄓㄔㄕㄖㄗㄘㄙㄚㄛㄜㄝㄞㄟㄠㄡㄢㄣㄤㄥㄦ",
}

// Names returns the known pool names in sorted order.
func Names() []string {
	names := make([]string, 0, len(pools))
	for name := range pools {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns every pool sorted by name.
func All() []Pool {
	return utils.Map(Names(), func(name string) Pool {
		return Pool{Name: name, Chars: pools[name]}
	})
}

// Lookup returns the pool with the given name.
func Lookup(name string) (Pool, bool) {
	chars, ok := pools[name]
	if !ok {
		return Pool{}, false
	}
	return Pool{Name: name, Chars: chars}, true
}

// Chars returns the characters of the named pools concatenated in order.
// Unknown names are skipped; callers validate with ParseList first.
func Chars(names []string) string {
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(pools[name])
	}
	return sb.String()
}

// Sample returns the first n characters of the pool.
func (p Pool) Sample(n int) string {
	runes := []rune(p.Chars)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

// Size returns the number of characters in the pool.
func (p Pool) Size() int {
	return len([]rune(p.Chars))
}

// UnknownPoolError reports a pool name that is not built in.
type UnknownPoolError struct {
	Label string
	Name  string
}

func (e *UnknownPoolError) Error() string {
	return fmt.Sprintf("%s contains unknown pool %q (valid: %s)", e.Label, e.Name, strings.Join(Names(), ", "))
}

// ParseList parses a comma separated list of pool names. Names are trimmed
// and lowercased, empty entries are skipped and duplicates collapse to the
// first occurrence.
func ParseList(expr, label string) ([]string, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}

	var names []string
	for _, raw := range strings.Split(expr, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		if _, ok := Lookup(name); !ok {
			return nil, &UnknownPoolError{Label: label, Name: name}
		}
		names = append(names, name)
	}
	return utils.Unique(names), nil
}
