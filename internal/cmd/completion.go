package cmd

import (
	"fmt"
	"strings"

	"github.com/d-kuro/dictgen/internal/pool"
	"github.com/spf13/cobra"
)

// getPoolCompletions completes the last entry of a comma separated pool list
func getPoolCompletions(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	current := toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
		current = toComplete[i+1:]
	}

	chosen := make(map[string]bool)
	for _, name := range strings.Split(prefix, ",") {
		chosen[strings.ToLower(strings.TrimSpace(name))] = true
	}

	var completions []string
	for _, p := range pool.All() {
		if chosen[p.Name] || !strings.HasPrefix(p.Name, strings.ToLower(current)) {
			continue
		}
		completions = append(completions, fmt.Sprintf("%s%s\t%s...", prefix, p.Name, p.Sample(pool.SampleSize)))
	}

	return completions, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// getConfigKeyCompletions returns config key names for shell completion
func getConfigKeyCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	keys := []struct {
		name string
		desc string
	}{
		{"output_dir", "Directory the dictionaries are written to"},
		{"unicode.pools", "Pools mixed into every dictionary"},
		{"packages.count", "Number of package identifiers"},
		{"packages.span", "Package identifier length range"},
		{"packages.unicode", "Pools for package identifiers"},
		{"classes.count", "Number of class identifiers"},
		{"classes.span", "Class identifier length range"},
		{"classes.unicode", "Pools for class identifiers"},
		{"methods.count", "Number of method identifiers"},
		{"methods.span", "Method identifier length range"},
		{"methods.unicode", "Pools for method identifiers"},
		{"fields.count", "Number of field identifiers"},
		{"fields.span", "Field identifier length range"},
		{"fields.unicode", "Pools for field identifiers"},
		{"finder.preview", "Enable preview window"},
		{"ui.color", "Enable styled tables"},
		{"log.level", "Diagnostic log level"},
		{"log.pretty", "Human readable diagnostic logs"},
	}

	var completions []string
	for _, key := range keys {
		if strings.HasPrefix(key.name, toComplete) {
			completions = append(completions, fmt.Sprintf("%s\t%s", key.name, key.desc))
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
