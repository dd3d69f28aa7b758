package cmd

import (
	"fmt"
	"strings"

	"github.com/d-kuro/dictgen/internal/config"
	"github.com/d-kuro/dictgen/internal/finder"
	"github.com/d-kuro/dictgen/internal/pool"
	"github.com/d-kuro/dictgen/internal/ui"
	"github.com/d-kuro/dictgen/pkg/utils"
	"github.com/spf13/cobra"
)

// poolsCmd represents the pools command.
var poolsCmd = &cobra.Command{
	Use:   "pools",
	Short: "Show the built-in Unicode pools",
	Long: `Show the built-in Unicode pools with their size, display width and a sample.

Pool names are accepted by --unicode-pools and the per-dictionary --unicode-* flags.`,
	Example: `  # Show all pools
  dictgen pools`,
	Args: cobra.NoArgs,
	RunE: runPools,
}

// poolsPickCmd represents the pools pick command.
var poolsPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Select pools interactively",
	Long: `Select one or more pools with a fuzzy finder and print them as a
comma separated list, ready to pass to a --unicode-* flag.`,
	Example: `  # Pick pools for class names
  dictgen --unicode-classes "$(dictgen pools pick)"`,
	Args: cobra.NoArgs,
	RunE: runPoolsPick,
}

func init() {
	rootCmd.AddCommand(poolsCmd)
	poolsCmd.AddCommand(poolsPickCmd)
}

func runPools(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	return ui.New(&cfg.UI).PrintPools(pool.All())
}

func runPoolsPick(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	selected, err := finder.New(&cfg.Finder).SelectPools(pool.All())
	if err != nil {
		return fmt.Errorf("pool selection cancelled")
	}

	ui.New(&cfg.UI).PrintInfo(joinPoolNames(selected))
	return nil
}

func joinPoolNames(pools []pool.Pool) string {
	return strings.Join(utils.Map(pools, func(p pool.Pool) string { return p.Name }), ",")
}
