package resolve

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/d-kuro/dictgen/internal/generator"
	"github.com/d-kuro/dictgen/internal/pool"
	"github.com/d-kuro/dictgen/internal/span"
	"github.com/d-kuro/dictgen/pkg/models"
	"github.com/d-kuro/dictgen/pkg/option"
)

func TestResolve_Defaults(t *testing.T) {
	plan, err := Resolve(DefaultInput())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if plan.OutputDir != "config" {
		t.Errorf("OutputDir = %q, want config", plan.OutputDir)
	}
	if len(plan.Specs) != 4 {
		t.Fatalf("len(Specs) = %d, want 4", len(plan.Specs))
	}

	want := []struct {
		filename string
		count    int
		span     span.Span
		first    string
		body     string
	}{
		{"custom-packages.txt", 512, span.Span{Min: 6, Max: 18}, "abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopqrstuvwxyz0123456789"},
		{"custom-classes.txt", 512, span.Span{Min: 6, Max: 24}, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"},
		{"custom-methods.txt", 1024, span.Span{Min: 8, Max: 28}, "abcdefghijklmnopqrstuvwxyz_", "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"},
		{"custom-fields.txt", 1024, span.Span{Min: 8, Max: 28}, "abcdefghijklmnopqrstuvwxyz_", "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"},
	}
	for i, w := range want {
		spec := plan.Specs[i]
		if spec.Filename != w.filename || spec.Count != w.count || spec.Span != w.span {
			t.Errorf("Specs[%d] = %s/%d/%v, want %s/%d/%v", i, spec.Filename, spec.Count, spec.Span, w.filename, w.count, w.span)
		}
		if string(spec.First) != w.first {
			t.Errorf("Specs[%d].First = %q, want %q", i, string(spec.First), w.first)
		}
		if string(spec.Body) != w.body {
			t.Errorf("Specs[%d].Body = %q, want %q", i, string(spec.Body), w.body)
		}
	}
}

func TestResolve_EmptySpanUsesDefault(t *testing.T) {
	in := DefaultInput()
	in.Categories["classes"] = CategoryInput{Count: 5}
	in.OutputDir = ""

	plan, err := Resolve(in)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if plan.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", plan.OutputDir, DefaultOutputDir)
	}
	if plan.Specs[1].Span != (span.Span{Min: 6, Max: 24}) {
		t.Errorf("classes span = %v, want 6-24", plan.Specs[1].Span)
	}
}

func TestResolve_Pools(t *testing.T) {
	in := DefaultInput()
	in.GlobalPools = "greek"
	in.Categories["packages"] = CategoryInput{Count: 10, Span: "6-6", Pools: "cyrillic, greek"}
	in.Categories["classes"] = CategoryInput{Count: 10, Span: "6-6", Pools: "Katakana"}

	plan, err := Resolve(in)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	packages := plan.Specs[0]
	if !slices.Equal(packages.Pools, []string{"greek", "cyrillic", "greek"}) {
		t.Errorf("packages pools = %v", packages.Pools)
	}
	if slices.Contains(packages.First, 'Ω') {
		t.Error("package charset should be lowercased")
	}
	if !slices.Contains(packages.First, 'ω') || !slices.Contains(packages.Body, 'я') {
		t.Error("package charset missing pool characters")
	}

	classes := plan.Specs[1]
	if !slices.Equal(classes.Pools, []string{"greek", "katakana"}) {
		t.Errorf("classes pools = %v", classes.Pools)
	}
	if !slices.Contains(classes.First, 'Ω') || !slices.Contains(classes.First, 'ア') {
		t.Error("class first charset missing pool characters")
	}

	methods := plan.Specs[2]
	if !slices.Equal(methods.Pools, []string{"greek"}) {
		t.Errorf("methods pools = %v, want only the global list", methods.Pools)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *Input)
		check  func(t *testing.T, err error)
	}{
		{
			name: "range error",
			modify: func(in *Input) {
				in.Categories["methods"] = CategoryInput{Count: 10, Span: "3-2"}
			},
			check: func(t *testing.T, err error) {
				var rangeErr *span.RangeError
				if !errors.As(err, &rangeErr) || rangeErr.Label != "methods-span" {
					t.Errorf("error = %v, want RangeError for methods-span", err)
				}
			},
		},
		{
			name: "format error",
			modify: func(in *Input) {
				in.Categories["fields"] = CategoryInput{Count: 10, Span: "eight"}
			},
			check: func(t *testing.T, err error) {
				var formatErr *span.FormatError
				if !errors.As(err, &formatErr) || formatErr.Label != "fields-span" {
					t.Errorf("error = %v, want FormatError for fields-span", err)
				}
			},
		},
		{
			name: "unknown category pool",
			modify: func(in *Input) {
				in.Categories["classes"] = CategoryInput{Count: 10, Pools: "klingon"}
			},
			check: func(t *testing.T, err error) {
				var poolErr *pool.UnknownPoolError
				if !errors.As(err, &poolErr) || poolErr.Label != "unicode-classes" {
					t.Fatalf("error = %v, want UnknownPoolError for unicode-classes", err)
				}
				for _, name := range pool.Names() {
					if !strings.Contains(err.Error(), name) {
						t.Errorf("error %q does not list %s", err, name)
					}
				}
			},
		},
		{
			name: "unknown global pool",
			modify: func(in *Input) {
				in.GlobalPools = "greek,elvish"
			},
			check: func(t *testing.T, err error) {
				var poolErr *pool.UnknownPoolError
				if !errors.As(err, &poolErr) || poolErr.Label != "unicode-pools" || poolErr.Name != "elvish" {
					t.Errorf("error = %v, want UnknownPoolError for unicode-pools", err)
				}
			},
		},
		{
			name: "non-positive count",
			modify: func(in *Input) {
				in.Categories["packages"] = CategoryInput{Count: 0}
			},
			check: func(t *testing.T, err error) {
				var countErr *CountError
				if !errors.As(err, &countErr) || countErr.Label != "packages-count" {
					t.Errorf("error = %v, want CountError for packages-count", err)
				}
			},
		},
		{
			name: "infeasible count",
			modify: func(in *Input) {
				in.Categories["packages"] = CategoryInput{Count: 27, Span: "1-1"}
			},
			check: func(t *testing.T, err error) {
				var capErr *generator.CapacityError
				if !errors.As(err, &capErr) || capErr.Capacity != 26 {
					t.Errorf("error = %v, want CapacityError with capacity 26", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInput()
			tt.modify(&in)
			plan, err := Resolve(in)
			if err == nil {
				t.Fatal("Resolve() expected error")
			}
			if plan != nil {
				t.Error("Resolve() should not return a plan on error")
			}
			tt.check(t, err)
		})
	}
}

func TestFromConfig(t *testing.T) {
	cfg := &models.Config{
		OutputDir: "out",
		Unicode:   models.UnicodeConfig{Pools: "greek"},
		Packages:  models.CategoryConfig{Count: 1, Span: "2-3", Unicode: "cyrillic"},
		Classes:   models.CategoryConfig{Count: 2},
		Methods:   models.CategoryConfig{Count: 3},
		Fields:    models.CategoryConfig{Count: 4, Unicode: "bopomofo"},
	}

	in := FromConfig(cfg)
	if in.OutputDir != "out" || in.GlobalPools != "greek" {
		t.Errorf("Input = %+v", in)
	}
	if got := in.Categories["packages"]; got != (CategoryInput{Count: 1, Span: "2-3", Pools: "cyrillic"}) {
		t.Errorf("packages = %+v", got)
	}
	if got := in.Categories["fields"]; got.Count != 4 || got.Pools != "bopomofo" {
		t.Errorf("fields = %+v", got)
	}
}

func TestPlanSourceAndPath(t *testing.T) {
	in := DefaultInput()
	in.OutputDir = filepath.Join("a", "b")
	in.Seed = option.Some(int64(42))

	plan, err := Resolve(in)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if got := plan.Path(plan.Specs[0]); got != filepath.Join("a", "b", "custom-packages.txt") {
		t.Errorf("Path() = %q", got)
	}

	a := generator.Generate(plan.Source(), plan.Specs[0])
	b := generator.Generate(plan.Source(), plan.Specs[0])
	if !slices.Equal(a, b) {
		t.Error("seeded plan sources should be reproducible")
	}
}
