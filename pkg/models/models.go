// Package models defines the core data structures used throughout the dictgen application.
package models

// Config represents the application configuration.
type Config struct {
	OutputDir string         `mapstructure:"output_dir"` // Directory the dictionaries are written to
	Unicode   UnicodeConfig  `mapstructure:"unicode"`    // Pools mixed into every category
	Packages  CategoryConfig `mapstructure:"packages"`   // Package name dictionary
	Classes   CategoryConfig `mapstructure:"classes"`    // Class name dictionary
	Methods   CategoryConfig `mapstructure:"methods"`    // Method name dictionary
	Fields    CategoryConfig `mapstructure:"fields"`     // Field name dictionary
	Finder    FinderConfig   `mapstructure:"finder"`     // Fuzzy finder configuration
	UI        UIConfig       `mapstructure:"ui"`         // UI-related configuration
	Log       LogConfig      `mapstructure:"log"`        // Diagnostic logging
}

// UnicodeConfig contains the global pool selection.
type UnicodeConfig struct {
	Pools string `mapstructure:"pools"` // Comma separated pool names
}

// CategoryConfig contains the generation settings of one dictionary.
type CategoryConfig struct {
	Count   int    `mapstructure:"count"`   // Number of identifiers
	Span    string `mapstructure:"span"`    // Length range as "min-max"
	Unicode string `mapstructure:"unicode"` // Comma separated pool names for this category only
}

// FinderConfig contains fuzzy finder configuration options.
type FinderConfig struct {
	Preview bool `mapstructure:"preview"` // Enable preview window
}

// UIConfig contains UI-related configuration options.
type UIConfig struct {
	Color bool `mapstructure:"color"` // Enable styled table output
}

// LogConfig contains diagnostic logging options.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // zerolog level name
	Pretty bool   `mapstructure:"pretty"` // Human readable console output
}

// DictionaryInfo summarizes an existing dictionary file.
type DictionaryInfo struct {
	Path       string `json:"path"`
	Entries    int    `json:"entries"`
	Duplicates int    `json:"duplicates"`
	MinLength  int    `json:"min_length"` // In characters
	MaxLength  int    `json:"max_length"` // In characters
	MaxWidth   int    `json:"max_width"`  // Terminal display width of the widest entry
	NonASCII   int    `json:"non_ascii"`  // Entries containing characters outside ASCII
}
