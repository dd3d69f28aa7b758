package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/d-kuro/dictgen/internal/pool"
	"github.com/d-kuro/dictgen/internal/resolve"
	"github.com/d-kuro/dictgen/pkg/models"
	"github.com/d-kuro/dictgen/pkg/option"
)

func newTestPrinter(color bool) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	p := New(&models.UIConfig{Color: color}).SetOutput(&out, &errOut)
	return p, &out, &errOut
}

func TestNewPrinter(t *testing.T) {
	tests := []struct {
		name   string
		config *models.UIConfig
		want   bool
	}{
		{name: "WithColor", config: &models.UIConfig{Color: true}, want: true},
		{name: "WithoutColor", config: &models.UIConfig{Color: false}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.config)
			if p.useColor != tt.want {
				t.Errorf("useColor = %v, want %v", p.useColor, tt.want)
			}
		})
	}
}

func TestPrintPoolSamples(t *testing.T) {
	p, out, _ := newTestPrinter(false)
	p.PrintPoolSamples(pool.All())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want header plus 5 pools:\n%s", len(lines), out.String())
	}
	for i, name := range pool.Names() {
		line := lines[i+1]
		prefix := "- " + name + ": "
		if !strings.HasPrefix(line, prefix) || !strings.HasSuffix(line, "...") {
			t.Errorf("line %q does not describe pool %s", line, name)
			continue
		}
		sample := strings.TrimSuffix(strings.TrimPrefix(line, prefix), "...")
		if n := len([]rune(sample)); n != pool.SampleSize {
			t.Errorf("sample for %s has %d characters, want %d", name, n, pool.SampleSize)
		}
	}
}

func TestPrintPools(t *testing.T) {
	for _, color := range []bool{true, false} {
		p, out, _ := newTestPrinter(color)
		if err := p.PrintPools(pool.All()); err != nil {
			t.Fatalf("PrintPools() error = %v", err)
		}
		for _, want := range []string{"NAME", "SAMPLE", "bopomofo", "ㄅㄆㄇ", "48"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("color=%v: output missing %q:\n%s", color, want, out.String())
			}
		}
	}
}

func TestPrintDictionaries(t *testing.T) {
	p, out, _ := newTestPrinter(false)
	err := p.PrintDictionaries([]models.DictionaryInfo{
		{Path: "config/custom-fields.txt", Entries: 1024, Duplicates: 0, MinLength: 8, MaxLength: 28, MaxWidth: 28},
	})
	if err != nil {
		t.Fatalf("PrintDictionaries() error = %v", err)
	}
	for _, want := range []string{"config/custom-fields.txt", "1024", "8-28"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	p, out, _ = newTestPrinter(false)
	if err := p.PrintDictionaries(nil); err != nil {
		t.Fatalf("PrintDictionaries(nil) error = %v", err)
	}
	if out.String() != "No dictionaries found\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestPrintDictionariesJSON(t *testing.T) {
	p, out, _ := newTestPrinter(false)
	infos := []models.DictionaryInfo{{Path: "config/custom-methods.txt", Entries: 3, MinLength: 8, MaxLength: 9}}
	if err := p.PrintDictionariesJSON(infos); err != nil {
		t.Fatalf("PrintDictionariesJSON() error = %v", err)
	}

	var decoded []models.DictionaryInfo
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0] != infos[0] {
		t.Errorf("decoded = %+v, want %+v", decoded, infos)
	}
}

func TestPrintPlan(t *testing.T) {
	in := resolve.DefaultInput()
	in.Seed = option.Some(int64(42))
	in.GlobalPools = "greek,greek"
	plan, err := resolve.Resolve(in)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	p, out, _ := newTestPrinter(false)
	if err := p.PrintPlan(plan); err != nil {
		t.Fatalf("PrintPlan() error = %v", err)
	}

	var decoded planView
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("plan is not valid YAML: %v\n%s", err, out.String())
	}
	if decoded.Seed == nil || *decoded.Seed != 42 {
		t.Errorf("Seed = %v, want 42", decoded.Seed)
	}
	if len(decoded.Specs) != 4 {
		t.Fatalf("len(dictionaries) = %d, want 4", len(decoded.Specs))
	}
	packages := decoded.Specs[0]
	if packages.Category != "packages" || packages.Count != 512 || packages.Span.Min != 6 || packages.Span.Max != 18 {
		t.Errorf("packages = %+v", packages)
	}
	if len(packages.Pools) != 1 || packages.Pools[0] != "greek" {
		t.Errorf("packages pools = %v, want [greek]", packages.Pools)
	}
	if packages.FirstSize != 26+24 {
		t.Errorf("first_chars = %d, want %d", packages.FirstSize, 26+24)
	}
}

func TestPrintConfig(t *testing.T) {
	p, out, _ := newTestPrinter(false)
	p.PrintConfig(map[string]any{
		"output_dir": "config",
		"packages":   map[string]any{"span": "6-18", "count": 512},
	})

	want := "output_dir = config\npackages.count = 512\npackages.span = 6-18\n"
	if out.String() != want {
		t.Errorf("PrintConfig() = %q, want %q", out.String(), want)
	}
}

func TestPrintMessages(t *testing.T) {
	p, out, errOut := newTestPrinter(false)

	p.PrintError(errors.New("methods-span has an invalid range: 3-2"))
	p.PrintSuccess("done")
	p.PrintInfo("info")

	if errOut.String() != "Error: methods-span has an invalid range: 3-2\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
	if out.String() != "done\ninfo\n" {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestSeedLabel(t *testing.T) {
	if got := SeedLabel(option.Some(int64(7))); got != "seed 7" {
		t.Errorf("SeedLabel(Some) = %q", got)
	}
	if got := SeedLabel(option.None[int64]()); got != "system random" {
		t.Errorf("SeedLabel(None) = %q", got)
	}
}

func TestFormatCapacity(t *testing.T) {
	if got := formatCapacity(26); got != "26" {
		t.Errorf("formatCapacity(26) = %q", got)
	}
	if got := formatCapacity(^uint64(0)); !strings.HasPrefix(got, ">= ") {
		t.Errorf("formatCapacity(max) = %q", got)
	}
}
