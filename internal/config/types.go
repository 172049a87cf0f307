package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
const CurrentConfigVersion = 1

// Config represents ~/.config/workcheck/config.yaml.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Subject is the person the card asks about.
	Subject string `yaml:"subject" mapstructure:"subject"`

	// RefreshDelay is how long the simulated satellite query takes.
	RefreshDelay time.Duration `yaml:"refresh_delay" mapstructure:"refresh_delay"`

	// Overlap is "restart" or "ignore"; see refresh.OverlapPolicy.
	Overlap string `yaml:"overlap" mapstructure:"overlap"`

	// Seed makes draws reproducible. Zero means random.
	Seed int64 `yaml:"seed,omitempty" mapstructure:"seed"`

	// CatalogFile points at a custom YAML or TOML catalog.
	// Supports ~ and ${HOME}.
	CatalogFile string `yaml:"catalog_file,omitempty" mapstructure:"catalog_file"`

	// AltScreen runs the TUI in the terminal's alternate screen.
	AltScreen bool `yaml:"alt_screen" mapstructure:"alt_screen"`
}

// Defaults.
const (
	DefaultSubject      = "Ben"
	DefaultRefreshDelay = 400 * time.Millisecond
	DefaultOverlap      = "restart"
	MaxRefreshDelay     = time.Minute
)

// DefaultConfig returns a config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Version:      CurrentConfigVersion,
		Subject:      DefaultSubject,
		RefreshDelay: DefaultRefreshDelay,
		Overlap:      DefaultOverlap,
		AltScreen:    true,
	}
}
