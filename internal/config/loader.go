package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rileyhilliard/workcheck/internal/errors"
)

const (
	// GlobalConfigDir is the directory for the config file, relative to $HOME.
	GlobalConfigDir = ".config/workcheck"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. WORKCHECK_SUBJECT.
	EnvPrefix = "WORKCHECK"
)

// DefaultPath returns ~/.config/workcheck/config.yaml, or "" if $HOME is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// Load reads config from path. An empty path means DefaultPath. A missing
// default file is not an error: defaults plus environment overrides are used.
// A missing explicit file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	v := newViper()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Failed to read config file",
					"Check the file is valid YAML: "+path)
			}
		} else if explicit {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Specified config file not found: "+path,
				"Check the path, or run 'workcheck init' to create one")
		}
	}

	return parseConfig(v, path)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("subject", def.Subject)
	v.SetDefault("refresh_delay", def.RefreshDelay.String())
	v.SetDefault("overlap", def.Overlap)
	v.SetDefault("seed", 0)
	v.SetDefault("catalog_file", "")
	v.SetDefault("alt_screen", def.AltScreen)
	return v
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		where := "environment overrides"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+where)
	}

	cfg.Subject = strings.TrimSpace(cfg.Subject)
	cfg.Overlap = strings.ToLower(strings.TrimSpace(cfg.Overlap))
	cfg.CatalogFile = ExpandTilde(Expand(strings.TrimSpace(cfg.CatalogFile)))

	return cfg, nil
}

// ExpandTilde replaces ~ or ~/path with the user's home directory.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}

// Expand replaces ${HOME} and ${USER} in s.
func Expand(s string) string {
	if strings.Contains(s, "${HOME}") {
		home, _ := os.UserHomeDir()
		s = strings.ReplaceAll(s, "${HOME}", home)
	}
	if strings.Contains(s, "${USER}") {
		s = strings.ReplaceAll(s, "${USER}", os.Getenv("USER"))
	}
	return s
}
