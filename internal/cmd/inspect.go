package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/d-kuro/dictgen/internal/config"
	"github.com/d-kuro/dictgen/internal/dictionary"
	"github.com/d-kuro/dictgen/internal/resolve"
	"github.com/d-kuro/dictgen/internal/ui"
	"github.com/d-kuro/dictgen/pkg/filesystem"
	"github.com/d-kuro/dictgen/pkg/models"
	"github.com/spf13/cobra"
)

var inspectJSON bool

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:   "inspect [file...]",
	Short: "Summarize existing dictionaries",
	Long: `Summarize dictionary files: entry count, duplicates, identifier length
range, display width and entries containing non-ASCII characters.

Without arguments the dictionaries in the configured output directory are inspected.`,
	Example: `  # Inspect the dictionaries in the output directory
  dictgen inspect

  # Inspect a single file as JSON
  dictgen inspect build/custom-classes.txt --json`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Output in JSON format")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fs := filesystem.NewStandardFileSystem()
	infos, err := inspectDictionaries(fs, dictionaryPaths(fs, cfg.OutputDir, args))
	if err != nil {
		return err
	}

	printer := ui.New(&cfg.UI)
	if inspectJSON {
		return printer.PrintDictionariesJSON(infos)
	}
	return printer.PrintDictionaries(infos)
}

// dictionaryPaths returns args, or the existing dictionaries under outputDir
// when no paths were given.
func dictionaryPaths(fs filesystem.FileSystemInterface, outputDir string, args []string) []string {
	if len(args) > 0 {
		return args
	}

	var paths []string
	for _, c := range resolve.Categories {
		path := filepath.Join(outputDir, c.Filename)
		if fs.Exists(path) && !fs.IsDir(path) {
			paths = append(paths, path)
		}
	}
	return paths
}

func inspectDictionaries(fs filesystem.FileSystemInterface, paths []string) ([]models.DictionaryInfo, error) {
	infos := make([]models.DictionaryInfo, 0, len(paths))
	for _, path := range paths {
		info, err := dictionary.Inspect(fs, path)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
