package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/workcheck/internal/errors"
)

// fileConfig is the on-disk layout. Durations are written as strings.
type fileConfig struct {
	Version      int    `yaml:"version"`
	Subject      string `yaml:"subject"`
	RefreshDelay string `yaml:"refresh_delay"`
	Overlap      string `yaml:"overlap"`
	Seed         int64  `yaml:"seed,omitempty"`
	CatalogFile  string `yaml:"catalog_file,omitempty"`
	AltScreen    bool   `yaml:"alt_screen"`
}

// Save writes cfg as YAML, creating parent directories.
func Save(path string, cfg *Config) error {
	out := fileConfig{
		Version:      cfg.Version,
		Subject:      cfg.Subject,
		RefreshDelay: cfg.RefreshDelay.String(),
		Overlap:      cfg.Overlap,
		Seed:         cfg.Seed,
		CatalogFile:  cfg.CatalogFile,
		AltScreen:    cfg.AltScreen,
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"This is a bug; please report it")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot create config directory",
			"Check permissions on "+filepath.Dir(path))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot write config file",
			"Check permissions on "+path)
	}
	return nil
}
