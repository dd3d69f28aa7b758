// Package dictionary writes generated identifiers in the one-token-per-line
// format read by the obfuscator's dictionary import, and reads them back.
package dictionary

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/d-kuro/dictgen/pkg/filesystem"
	"github.com/d-kuro/dictgen/pkg/models"
)

// PreviewSize is the number of entries shown in a dry run.
const PreviewSize = 5

// Writer writes dictionaries or previews them without touching disk.
type Writer struct {
	fs  filesystem.FileSystemInterface
	out io.Writer
}

// NewWriter creates a Writer that reports progress to out.
func NewWriter(fs filesystem.FileSystemInterface, out io.Writer) *Writer {
	return &Writer{fs: fs, out: out}
}

// Encode renders identifiers one per line with a trailing newline.
func Encode(ids []string) []byte {
	return []byte(strings.Join(ids, "\n") + "\n")
}

// Write stores ids at path, creating parent directories and replacing any
// existing file. In a dry run it only prints a preview.
func (w *Writer) Write(path string, ids []string, dryRun bool) error {
	if dryRun {
		preview := ids[:min(PreviewSize, len(ids))]
		_, err := fmt.Fprintf(w.out, "[dry-run] %s: %d entries (preview: %s)\n",
			filepath.Base(path), len(ids), strings.Join(preview, ", "))
		return err
	}

	if err := w.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := w.fs.WriteFile(path, Encode(ids), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	_, err := fmt.Fprintf(w.out, "[done] %s <- %d entries\n", path, len(ids))
	return err
}

// Read loads a dictionary file. Blank lines are ignored and a trailing
// carriage return is stripped.
func Read(fs filesystem.FileSystemInterface, path string) ([]string, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s is not valid UTF-8", path)
	}

	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		ids = append(ids, line)
	}
	return ids, nil
}

// Inspect summarizes the dictionary at path.
func Inspect(fs filesystem.FileSystemInterface, path string) (models.DictionaryInfo, error) {
	ids, err := Read(fs, path)
	if err != nil {
		return models.DictionaryInfo{}, err
	}
	info := Summarize(ids)
	info.Path = path
	return info, nil
}

// Summarize computes entry statistics for ids.
func Summarize(ids []string) models.DictionaryInfo {
	info := models.DictionaryInfo{Entries: len(ids)}
	seen := make(map[string]struct{}, len(ids))

	for i, id := range ids {
		if _, dup := seen[id]; dup {
			info.Duplicates++
		}
		seen[id] = struct{}{}

		length := utf8.RuneCountInString(id)
		if i == 0 || length < info.MinLength {
			info.MinLength = length
		}
		info.MaxLength = max(info.MaxLength, length)
		info.MaxWidth = max(info.MaxWidth, runewidth.StringWidth(id))

		for _, r := range id {
			if r >= utf8.RuneSelf {
				info.NonASCII++
				break
			}
		}
	}
	return info
}
