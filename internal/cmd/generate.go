package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/d-kuro/dictgen/internal/config"
	"github.com/d-kuro/dictgen/internal/dictionary"
	"github.com/d-kuro/dictgen/internal/generator"
	"github.com/d-kuro/dictgen/internal/log"
	"github.com/d-kuro/dictgen/internal/pool"
	"github.com/d-kuro/dictgen/internal/resolve"
	"github.com/d-kuro/dictgen/internal/tui"
	"github.com/d-kuro/dictgen/internal/ui"
	"github.com/d-kuro/dictgen/pkg/filesystem"
	"github.com/d-kuro/dictgen/pkg/models"
	"github.com/d-kuro/dictgen/pkg/option"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	errBrowseNeedsDryRun   = errors.New("--browse requires --dry-run")
	errBrowseNeedsTerminal = errors.New("--browse requires an interactive terminal")
)

// isTerminal reports whether the browser can take over stdin and stdout.
var isTerminal = func() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return false
		}
	}
	return true
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if listPools {
		ui.New(&models.UIConfig{}).SetOutput(out, cmd.ErrOrStderr()).PrintPoolSamples(pool.All())
		return nil
	}
	if browse {
		if !dryRun {
			return errBrowseNeedsDryRun
		}
		if !isTerminal() {
			return errBrowseNeedsTerminal
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	in := resolve.FromConfig(cfg)
	in.DryRun = dryRun
	if cmd.Flags().Changed("seed") {
		in.Seed = option.Some(seed)
	}

	plan, err := resolve.Resolve(in)
	if err != nil {
		return err
	}

	if showPlan {
		return ui.New(&cfg.UI).SetOutput(out, cmd.ErrOrStderr()).PrintPlan(plan)
	}

	w := dictionary.NewWriter(filesystem.NewStandardFileSystem(), out)
	batches, err := generate(plan, w)
	if err != nil {
		return err
	}

	if browse {
		return tui.RunBrowser(batches)
	}
	return nil
}

// generate produces every dictionary of the plan in order, drawing from a
// single random source, and hands each batch to w.
func generate(plan *resolve.Plan, w *dictionary.Writer) ([]tui.Batch, error) {
	logger := log.L()
	logger.Debug().
		Str("output_dir", plan.OutputDir).
		Str("source", ui.SeedLabel(plan.Seed)).
		Bool("dry_run", plan.DryRun).
		Msg("generating dictionaries")

	src := plan.Source()
	batches := make([]tui.Batch, 0, len(plan.Specs))
	for _, spec := range plan.Specs {
		ids, stats := generator.GenerateWithStats(src, spec)
		logger.Debug().
			Str("category", spec.Category).
			Int("count", len(ids)).
			Str("span", spec.Span.String()).
			Strs("pools", spec.Pools).
			Int("first_chars", len(spec.First)).
			Int("body_chars", len(spec.Body)).
			Int("rejected", stats.Rejected).
			Msg("generated")

		if err := w.Write(plan.Path(spec), ids, plan.DryRun); err != nil {
			return nil, err
		}
		batches = append(batches, tui.Batch{Title: spec.Filename, IDs: ids})
	}
	return batches, nil
}
