// Package loader reads parameter files and appends their values to a RawSet.
//
// File values are appended after whatever the set already holds, so when the
// set is later collapsed with params.KeepFirst the values given on the
// command line win over the file.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/boostcfg/internal/alias"
	"github.com/harrison/boostcfg/internal/diagnostic"
	"github.com/harrison/boostcfg/internal/params"
)

// CodeLoader is the diagnostic code for messages about parameter files.
const CodeLoader = "loader"

// Format represents the format of a parameter file
type Format int

const (
	// FormatUnknown represents an unknown or unsupported file format
	FormatUnknown Format = iota
	// FormatConf represents key=value lines (.conf, .txt or no extension)
	FormatConf
	// FormatYAML represents a YAML (.yaml, .yml) mapping
	FormatYAML
	// FormatTOML represents a TOML (.toml) table
	FormatTOML
	// FormatMarkdown represents Markdown (.md, .markdown) with fenced params blocks
	FormatMarkdown
)

// String returns the string representation of the Format
func (f Format) String() string {
	switch f {
	case FormatConf:
		return "conf"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// Loader is the interface that all parameter file readers implement
type Loader interface {
	// Load reads r and appends every parameter it finds to raw
	Load(r io.Reader, raw *params.RawSet, rep *diagnostic.Reporter) error
}

// DetectFormat detects the file format based on its extension
// Supported extensions:
//   - .conf, .txt, none -> FormatConf
//   - .yaml, .yml -> FormatYAML
//   - .toml -> FormatTOML
//   - .md, .markdown -> FormatMarkdown
//   - all others -> FormatUnknown
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".conf", ".txt", "":
		return FormatConf
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatUnknown
	}
}

// NewLoader creates a loader for the specified format
func NewLoader(format Format) (Loader, error) {
	switch format {
	case FormatConf:
		return &ConfLoader{}, nil
	case FormatYAML:
		return &YAMLLoader{}, nil
	case FormatTOML:
		return &TOMLLoader{}, nil
	case FormatMarkdown:
		return NewMarkdownLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}

// Load detects the format of path, reads it and appends its parameters to raw.
func Load(path string, raw *params.RawSet, rep *diagnostic.Reporter) error {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return fmt.Errorf("unknown parameter file format: %s (supported: .conf, .txt, .yaml, .yml, .toml, .md, .markdown)", path)
	}

	l, err := NewLoader(format)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open parameter file: %w", err)
	}
	defer file.Close()

	before := raw.Len()
	if err := l.Load(file, raw, rep); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	rep.Debug("loaded %s parameter file %s (%d new keys)", format, path, raw.Len()-before)
	return nil
}

// ConfigPath returns the parameter file named on the command line through
// "config" or one of its aliases.
func ConfigPath(raw *params.RawSet) (string, bool) {
	for _, key := range raw.Keys() {
		if name, ok := alias.Canonical(key); !ok || name != "config" {
			continue
		}
		if v, ok := raw.First(key); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
