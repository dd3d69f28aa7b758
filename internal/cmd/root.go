// Package cmd provides CLI commands for the dictgen application.
package cmd

import (
	"fmt"
	"os"

	"github.com/d-kuro/dictgen/internal/config"
	"github.com/d-kuro/dictgen/internal/log"
	"github.com/d-kuro/dictgen/internal/resolve"
	"github.com/d-kuro/dictgen/internal/ui"
	"github.com/d-kuro/dictgen/pkg/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	seed      int64
	dryRun    bool
	listPools bool
	showPlan  bool
	browse    bool
	logLevel  string
)

// flagBindings maps viper keys to the flags that override them. They are
// bound on every initialization so a reset viper picks them up again.
var flagBindings = map[string]*pflag.Flag{}

// rootCmd generates the dictionaries when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dictgen",
	Short: "Obfuscator naming dictionary generator",
	Long: `dictgen generates the custom naming dictionaries used by the obfuscator.

Four dictionaries are written to the output directory, one identifier per line:
custom-packages.txt, custom-classes.txt, custom-methods.txt and custom-fields.txt.
Identifiers are random, unique within their dictionary, and can mix in
characters from the built-in Unicode pools.

Settings come from flags, DICTGEN_* environment variables and
~/.config/dictgen/config.toml, in that order of precedence.`,
	Example: `  # Regenerate all dictionaries into ./config
  dictgen

  # Reproducible output with shorter package names
  dictgen --seed 42 --packages-span 4-10

  # Mix Greek into every dictionary and Katakana into class names
  dictgen --unicode-pools greek --unicode-classes katakana

  # Preview without writing anything
  dictgen --dry-run

  # Show the built-in Unicode pools
  dictgen --list-unicode-pools`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	RunE:          runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.New(&models.UIConfig{}).PrintError(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic log level (trace, debug, info, warn, error, off)")
	bindFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	flags := rootCmd.Flags()
	flags.String("output-dir", resolve.DefaultOutputDir, "Directory the dictionaries are written to")
	bindFlag("output_dir", flags.Lookup("output-dir"))

	flags.String("unicode-pools", "", "Unicode pools mixed into every dictionary (comma separated)")
	bindFlag("unicode.pools", flags.Lookup("unicode-pools"))
	_ = rootCmd.RegisterFlagCompletionFunc("unicode-pools", getPoolCompletions)

	for _, c := range resolve.Categories {
		flags.Int(c.Name+"-count", c.DefaultCount, fmt.Sprintf("Number of %s identifiers", c.Name))
		bindFlag(c.Name+".count", flags.Lookup(c.Name+"-count"))

		flags.String(c.Name+"-span", "", fmt.Sprintf("Length range of %s identifiers as min-max (default %s)", c.Name, c.DefaultSpan))
		bindFlag(c.Name+".span", flags.Lookup(c.Name+"-span"))

		flags.String("unicode-"+c.Name, "", fmt.Sprintf("Unicode pools mixed into %s identifiers only (comma separated)", c.Name))
		bindFlag(c.Name+".unicode", flags.Lookup("unicode-"+c.Name))
		_ = rootCmd.RegisterFlagCompletionFunc("unicode-"+c.Name, getPoolCompletions)
	}

	flags.Int64Var(&seed, "seed", 0, "Random seed; the same seed and settings give identical output")
	flags.BoolVar(&dryRun, "dry-run", false, "Print a preview instead of writing files")
	flags.BoolVar(&listPools, "list-unicode-pools", false, "List the built-in Unicode pools and exit")
	flags.BoolVar(&showPlan, "plan", false, "Print the resolved settings as YAML and exit")
	flags.BoolVar(&browse, "browse", false, "Browse the generated identifiers in the terminal (requires --dry-run)")
}

func bindFlag(key string, flag *pflag.Flag) {
	if flag == nil {
		panic(fmt.Sprintf("no flag to bind to %s", key))
	}
	flagBindings[key] = flag
}

func bindFlags() error {
	for key, flag := range flagBindings {
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}
	return nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Listing pools must work regardless of the configuration.
	if listPools {
		return
	}

	if err := bindFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	log.Init(log.Config{
		Level:  viper.GetString("log.level"),
		Pretty: viper.GetBool("log.pretty"),
	})
}
