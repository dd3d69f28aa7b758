// Package finder provides fuzzy finder integration for the dictgen application.
package finder

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/mattn/go-runewidth"

	"github.com/d-kuro/dictgen/internal/pool"
	"github.com/d-kuro/dictgen/pkg/models"
)

// Finder provides fuzzy finder functionality.
type Finder struct {
	config *models.FinderConfig
}

// New creates a new Finder instance.
func New(config *models.FinderConfig) *Finder {
	return &Finder{config: config}
}

// SelectPools displays a fuzzy finder for selecting one or more pools.
func (f *Finder) SelectPools(pools []pool.Pool) ([]pool.Pool, error) {
	if len(pools) == 0 {
		return nil, fmt.Errorf("no pools available")
	}

	opts := []fuzzyfinder.Option{
		fuzzyfinder.WithPromptString("Select pools (Tab to select multiple)> "),
	}

	if f.config != nil && f.config.Preview {
		opts = append(opts, fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return generatePoolPreview(pools[i], w, h)
		}))
	}

	indices, err := fuzzyfinder.FindMulti(
		pools,
		func(i int) string {
			return fmt.Sprintf("%s (%s...)", pools[i].Name, pools[i].Sample(pool.SampleSize))
		},
		opts...,
	)
	if err != nil {
		return nil, err
	}

	selected := make([]pool.Pool, len(indices))
	for i, idx := range indices {
		selected[i] = pools[idx]
	}

	return selected, nil
}

// generatePoolPreview shows every character of the pool wrapped to the
// preview width.
func generatePoolPreview(p pool.Pool, width, maxLines int) string {
	preview := []string{
		fmt.Sprintf("Pool: %s", p.Name),
		fmt.Sprintf("Characters: %d", p.Size()),
		"",
	}
	preview = append(preview, wrapByWidth(p.Chars, width-2)...)

	if maxLines > 0 && len(preview) > maxLines {
		preview = preview[:maxLines]
	}
	return strings.Join(preview, "\n")
}

// wrapByWidth splits s into lines no wider than width terminal cells.
func wrapByWidth(s string, width int) []string {
	if width < 2 {
		width = 2
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if lineWidth+rw > width && lineWidth > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		line.WriteRune(r)
		lineWidth += rw
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
