// Package ui provides user interface utilities for the dictgen application.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/d-kuro/dictgen/internal/generator"
	"github.com/d-kuro/dictgen/internal/pool"
	"github.com/d-kuro/dictgen/internal/resolve"
	"github.com/d-kuro/dictgen/internal/span"
	"github.com/d-kuro/dictgen/internal/table"
	"github.com/d-kuro/dictgen/pkg/models"
	"github.com/d-kuro/dictgen/pkg/option"
	"github.com/d-kuro/dictgen/pkg/utils"
)

// Printer handles output formatting.
type Printer struct {
	useColor bool
	out      io.Writer
	errOut   io.Writer
}

// New creates a new Printer instance writing to stdout and stderr.
func New(config *models.UIConfig) *Printer {
	return &Printer{
		useColor: config.Color,
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

// SetOutput redirects regular and error output.
func (p *Printer) SetOutput(out, errOut io.Writer) *Printer {
	p.out = out
	p.errOut = errOut
	return p
}

// PrintPoolSamples lists every pool with a short sample of its characters.
func (p *Printer) PrintPoolSamples(pools []pool.Pool) {
	_, _ = fmt.Fprintln(p.out, "Available Unicode pools:")
	for _, pl := range pools {
		_, _ = fmt.Fprintf(p.out, "- %s: %s...\n", pl.Name, pl.Sample(pool.SampleSize))
	}
}

// PrintPools displays pools in a table with their size and display width.
func (p *Printer) PrintPools(pools []pool.Pool) error {
	b := p.newTable().Headers("NAME", "SIZE", "WIDTH", "SAMPLE")
	for _, pl := range pools {
		sample := pl.Sample(pool.SampleSize)
		b.Row(
			pl.Name,
			strconv.Itoa(pl.Size()),
			strconv.Itoa(runewidth.RuneWidth([]rune(pl.Chars)[0])),
			sample,
		)
	}
	return b.Println()
}

// PrintDictionaries displays a summary row per dictionary file.
func (p *Printer) PrintDictionaries(infos []models.DictionaryInfo) error {
	if len(infos) == 0 {
		p.PrintInfo("No dictionaries found")
		return nil
	}

	b := p.newTable().Headers("FILE", "ENTRIES", "DUPLICATES", "LENGTH", "MAX WIDTH", "NON-ASCII")
	for _, info := range infos {
		b.Row(
			utils.TildePath(info.Path),
			strconv.Itoa(info.Entries),
			strconv.Itoa(info.Duplicates),
			fmt.Sprintf("%d-%d", info.MinLength, info.MaxLength),
			strconv.Itoa(info.MaxWidth),
			strconv.Itoa(info.NonASCII),
		)
	}
	return b.Println()
}

// PrintDictionariesJSON displays dictionary summaries in JSON format.
func (p *Printer) PrintDictionariesJSON(infos []models.DictionaryInfo) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(infos)
}

type planSpec struct {
	Category  string    `yaml:"category"`
	File      string    `yaml:"file"`
	Count     int       `yaml:"count"`
	Span      span.Span `yaml:"span"`
	Pools     []string  `yaml:"pools,omitempty"`
	FirstSize int       `yaml:"first_chars"`
	BodySize  int       `yaml:"body_chars"`
	Capacity  string    `yaml:"capacity"`
}

type planView struct {
	OutputDir string     `yaml:"output_dir"`
	Seed      *int64     `yaml:"seed,omitempty"`
	DryRun    bool       `yaml:"dry_run"`
	Specs     []planSpec `yaml:"dictionaries"`
}

// PrintPlan writes the resolved plan as YAML.
func (p *Printer) PrintPlan(plan *resolve.Plan) error {
	view := planView{
		OutputDir: plan.OutputDir,
		DryRun:    plan.DryRun,
		Specs: utils.Map(plan.Specs, func(s generator.Spec) planSpec {
			return planSpec{
				Category:  s.Category,
				File:      plan.Path(s),
				Count:     s.Count,
				Span:      s.Span,
				Pools:     utils.Unique(s.Pools),
				FirstSize: len(s.First),
				BodySize:  len(s.Body),
				Capacity:  formatCapacity(s.Capacity()),
			}
		}),
	}
	if seed, ok := plan.Seed.Get(); ok {
		view.Seed = &seed
	}

	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return enc.Close()
}

// PrintConfig displays configuration in a formatted manner.
func (p *Printer) PrintConfig(settings map[string]any) {
	p.printConfigRecursive("", settings)
}

// PrintError displays an error message.
func (p *Printer) PrintError(err error) {
	_, _ = fmt.Fprintf(p.errOut, "Error: %v\n", err)
}

// PrintSuccess displays a success message.
func (p *Printer) PrintSuccess(message string) {
	_, _ = fmt.Fprintln(p.out, message)
}

// PrintInfo displays an informational message.
func (p *Printer) PrintInfo(message string) {
	_, _ = fmt.Fprintln(p.out, message)
}

// SeedLabel describes the random source selected by seed.
func SeedLabel(seed option.Option[int64]) string {
	return option.Map(seed, func(v int64) string {
		return "seed " + strconv.FormatInt(v, 10)
	}).UnwrapOr("system random")
}

func (p *Printer) newTable() *table.Builder {
	style := table.NoBorderStyle()
	if p.useColor {
		style = table.DefaultStyle()
	}
	return table.NewWithStyle(style).SetOutput(p.out)
}

func formatCapacity(c uint64) string {
	if c == ^uint64(0) {
		return ">= " + strconv.FormatUint(c, 10)
	}
	return strconv.FormatUint(c, 10)
}

// printConfigRecursive recursively prints configuration values in key order.
func (p *Printer) printConfigRecursive(prefix string, data any) {
	switch v := data.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			newPrefix := key
			if prefix != "" {
				newPrefix = prefix + "." + key
			}
			p.printConfigRecursive(newPrefix, v[key])
		}
	default:
		_, _ = fmt.Fprintf(p.out, "%s = %v\n", prefix, v)
	}
}
