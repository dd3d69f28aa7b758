package cmd

import (
	"fmt"
	"strconv"

	"github.com/d-kuro/dictgen/internal/config"
	"github.com/d-kuro/dictgen/internal/ui"
	"github.com/spf13/cobra"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `Manage dictgen configuration settings.`,
}

// configListCmd represents the config list command.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show configuration",
	Long:  `Display all current configuration settings.`,
	Example: `  # Show all configuration
  dictgen config list`,
	RunE: runConfigList,
}

// configSetCmd represents the config set command.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set configuration value",
	Long: `Set a configuration value.

Configuration keys follow a dot notation format (e.g., classes.span).`,
	Example: `  # Write dictionaries to another directory
  dictgen config set output_dir build/obfuscation

  # Shorter class names
  dictgen config set classes.span 4-12

  # Always mix Greek into method names
  dictgen config set methods.unicode greek`,
	Args:              cobra.ExactArgs(2),
	RunE:              runConfigSet,
	ValidArgsFunction: getConfigKeyCompletions,
}

// configGetCmd represents the config get command.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get configuration value",
	Long:  `Get a specific configuration value.`,
	Example: `  # Get the output directory
  dictgen config get output_dir

  # Get the package name count
  dictgen config get packages.count`,
	Args:              cobra.ExactArgs(1),
	RunE:              runConfigGet,
	ValidArgsFunction: getConfigKeyCompletions,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
}

func runConfigList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	printer := ui.New(&cfg.UI).SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	printer.PrintConfig(config.AllSettings())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue := parseConfigValue(args[1])

	if err := config.Set(key, typedValue); err != nil {
		return fmt.Errorf("failed to set config: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	printer := ui.New(&cfg.UI).SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	printer.PrintSuccess(fmt.Sprintf("Set %s = %v", key, typedValue))
	return nil
}

// parseConfigValue converts booleans and integers, leaving everything else
// as a string. Spans such as "6-18" stay strings.
func parseConfigValue(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	if intVal, err := strconv.Atoi(value); err == nil {
		return intVal
	}
	return value
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := config.GetValue(key)

	if value == nil {
		return fmt.Errorf("configuration key not found: %s", key)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}
