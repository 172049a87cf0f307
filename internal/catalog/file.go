package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/workcheck/internal/errors"
)

// fileEntry is the on-disk shape of one status. There is no
// answer field: the label is always derived from Working.
type fileEntry struct {
	Working bool   `yaml:"working" toml:"working"`
	Message string `yaml:"message" toml:"message"`
	Icon    string `yaml:"icon" toml:"icon"`
}

type fileCatalog struct {
	Statuses []fileEntry `yaml:"statuses" toml:"statuses"`
}

// LoadFile reads a custom catalog. The format is chosen by extension:
// .yaml/.yml use YAML, .toml uses TOML.
//
//	statuses:
//	  - working: true
//	    message: "Refactoring the refactor."
//	    icon: Terminal
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrCatalog,
				"Catalog file not found: "+path,
				"Check the catalog_file setting or the --catalog flag")
		}
		return nil, errors.WrapWithCode(err, errors.ErrCatalog,
			"Cannot read catalog file: "+path,
			"Check file permissions")
	}
	return Parse(data, formatFor(path))
}

// Format identifies a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Parse decodes catalog data in the given format.
func Parse(data []byte, format Format) (*Catalog, error) {
	var raw fileCatalog

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrCatalog,
				"Cannot parse TOML catalog",
				"Use [[statuses]] tables with working, message and icon keys")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrCatalog,
				"Cannot parse YAML catalog",
				"Use a 'statuses' list with working, message and icon keys")
		}
	default:
		return nil, errors.New(errors.ErrCatalog,
			fmt.Sprintf("Unknown catalog format %q", format),
			"Use a .yaml, .yml or .toml file")
	}

	entries := make([]Entry, 0, len(raw.Statuses))
	for _, fe := range raw.Statuses {
		entries = append(entries, NewEntry(fe.Working, strings.TrimSpace(fe.Message), strings.TrimSpace(fe.Icon)))
	}
	return New(entries...)
}
