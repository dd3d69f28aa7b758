// Package resolve turns raw generation settings into validated dictionary
// specifications.
package resolve

import (
	"fmt"
	"path/filepath"

	"github.com/d-kuro/dictgen/internal/charset"
	"github.com/d-kuro/dictgen/internal/generator"
	"github.com/d-kuro/dictgen/internal/pool"
	"github.com/d-kuro/dictgen/internal/span"
	"github.com/d-kuro/dictgen/pkg/models"
	"github.com/d-kuro/dictgen/pkg/option"
)

// DefaultOutputDir is where dictionaries are written unless configured otherwise.
const DefaultOutputDir = "config"

// Category describes one identifier kind and its base character sets.
type Category struct {
	Name         string
	Filename     string
	DefaultCount int
	DefaultSpan  span.Span
	FirstBase    string
	BodyBase     string
	// Lowercase folds pool characters to lowercase before merging.
	Lowercase bool
}

// Categories lists the dictionaries in generation order.
var Categories = []Category{
	{
		Name:         "packages",
		Filename:     "custom-packages.txt",
		DefaultCount: 512,
		DefaultSpan:  span.Span{Min: 6, Max: 18},
		FirstBase:    charset.Lower,
		BodyBase:     charset.Lower + charset.Digits,
		Lowercase:    true,
	},
	{
		Name:         "classes",
		Filename:     "custom-classes.txt",
		DefaultCount: 512,
		DefaultSpan:  span.Span{Min: 6, Max: 24},
		FirstBase:    charset.Upper,
		BodyBase:     charset.Alpha + charset.Digits,
	},
	{
		Name:         "methods",
		Filename:     "custom-methods.txt",
		DefaultCount: 1024,
		DefaultSpan:  span.Span{Min: 8, Max: 28},
		FirstBase:    charset.Lower + "_",
		BodyBase:     charset.Alpha + charset.Digits + "_",
	},
	{
		Name:         "fields",
		Filename:     "custom-fields.txt",
		DefaultCount: 1024,
		DefaultSpan:  span.Span{Min: 8, Max: 28},
		FirstBase:    charset.Lower + "_",
		BodyBase:     charset.Alpha + charset.Digits + "_",
	},
}

// CategoryInput holds the raw settings of one category.
type CategoryInput struct {
	Count int
	Span  string
	Pools string
}

// Input holds the raw settings of one invocation.
type Input struct {
	OutputDir   string
	GlobalPools string
	Categories  map[string]CategoryInput
	Seed        option.Option[int64]
	DryRun      bool
}

// Plan is a fully validated invocation.
type Plan struct {
	OutputDir string
	Seed      option.Option[int64]
	DryRun    bool
	Specs     []generator.Spec
}

// CountError reports a non-positive identifier count.
type CountError struct {
	Label string
	Count int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("%s must be a positive integer, got %d", e.Label, e.Count)
}

// DefaultInput returns the settings used when nothing is configured.
func DefaultInput() Input {
	in := Input{
		OutputDir:  DefaultOutputDir,
		Categories: make(map[string]CategoryInput, len(Categories)),
		Seed:       option.None[int64](),
	}
	for _, c := range Categories {
		in.Categories[c.Name] = CategoryInput{Count: c.DefaultCount, Span: c.DefaultSpan.String()}
	}
	return in
}

// FromConfig builds an Input from the loaded configuration.
func FromConfig(cfg *models.Config) Input {
	category := func(c models.CategoryConfig) CategoryInput {
		return CategoryInput{Count: c.Count, Span: c.Span, Pools: c.Unicode}
	}
	return Input{
		OutputDir:   cfg.OutputDir,
		GlobalPools: cfg.Unicode.Pools,
		Categories: map[string]CategoryInput{
			"packages": category(cfg.Packages),
			"classes":  category(cfg.Classes),
			"methods":  category(cfg.Methods),
			"fields":   category(cfg.Fields),
		},
		Seed: option.None[int64](),
	}
}

// Resolve validates every category before returning the plan, so no
// generation starts when any setting is wrong.
func Resolve(in Input) (*Plan, error) {
	global, err := pool.ParseList(in.GlobalPools, "unicode-pools")
	if err != nil {
		return nil, err
	}

	outputDir := in.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	plan := &Plan{
		OutputDir: outputDir,
		Seed:      in.Seed,
		DryRun:    in.DryRun,
		Specs:     make([]generator.Spec, 0, len(Categories)),
	}

	for _, c := range Categories {
		spec, err := resolveCategory(c, in.Categories[c.Name], global)
		if err != nil {
			return nil, err
		}
		plan.Specs = append(plan.Specs, spec)
	}

	return plan, nil
}

func resolveCategory(c Category, in CategoryInput, global []string) (generator.Spec, error) {
	if in.Count < 1 {
		return generator.Spec{}, &CountError{Label: c.Name + "-count", Count: in.Count}
	}

	s, err := span.Parse(in.Span, c.DefaultSpan, c.Name+"-span")
	if err != nil {
		return generator.Spec{}, err
	}

	own, err := pool.ParseList(in.Pools, "unicode-"+c.Name)
	if err != nil {
		return generator.Spec{}, err
	}
	pools := make([]string, 0, len(global)+len(own))
	pools = append(pools, global...)
	pools = append(pools, own...)

	spec := generator.Spec{
		Category: c.Name,
		Filename: c.Filename,
		Count:    in.Count,
		Span:     s,
		Pools:    pools,
		First:    charset.Compose(c.FirstBase, pools, c.Lowercase),
		Body:     charset.Compose(c.BodyBase, pools, c.Lowercase),
	}
	if err := spec.Validate(); err != nil {
		return generator.Spec{}, err
	}
	return spec, nil
}

// Source returns the random source selected by the seed.
func (p *Plan) Source() generator.Source {
	if seed, ok := p.Seed.Get(); ok {
		return generator.NewSeededSource(seed)
	}
	return generator.NewSystemSource()
}

// Path returns the output path of a spec.
func (p *Plan) Path(spec generator.Spec) string {
	return filepath.Join(p.OutputDir, spec.Filename)
}
