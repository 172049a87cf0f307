package cli

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/rileyhilliard/workcheck/internal/catalog"
	"github.com/rileyhilliard/workcheck/internal/config"
	"github.com/rileyhilliard/workcheck/internal/logger"
	"github.com/rileyhilliard/workcheck/internal/random"
	"github.com/rileyhilliard/workcheck/internal/refresh"
)

// addSettingsFlags registers the flags that override config values.
func addSettingsFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default ~/.config/workcheck/config.yaml)")
	fs.String("subject", "", "name of the person being checked on")
	fs.Duration("delay", 0, "simulated satellite query time (e.g. 400ms)")
	fs.Int64("seed", 0, "random seed for reproducible draws (0 = random)")
	fs.String("catalog", "", "custom status catalog (.yaml, .yml or .toml)")
	fs.String("overlap", "", "what a refresh does while one is pending: restart or ignore")
}

// loadSettings loads the config file, applies flags the user set, and validates.
func loadSettings(fs *pflag.FlagSet) (*config.Config, error) {
	path, _ := fs.GetString("config")

	cfg, err := config.Load(config.ExpandTilde(path))
	if err != nil {
		return nil, err
	}

	if fs.Changed("subject") {
		subject, _ := fs.GetString("subject")
		cfg.Subject = strings.TrimSpace(subject)
	}
	if fs.Changed("delay") {
		cfg.RefreshDelay, _ = fs.GetDuration("delay")
	}
	if fs.Changed("seed") {
		cfg.Seed, _ = fs.GetInt64("seed")
	}
	if fs.Changed("catalog") {
		file, _ := fs.GetString("catalog")
		cfg.CatalogFile = config.ExpandTilde(config.Expand(file))
	}
	if fs.Changed("overlap") {
		overlap, _ := fs.GetString("overlap")
		cfg.Overlap = strings.ToLower(strings.TrimSpace(overlap))
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadCatalog returns the configured catalog, or the built-in one.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.CatalogFile)
}

// buildController wires the catalog, random source and timing from cfg.
// Extra options are applied last.
func buildController(cfg *config.Config, extra ...refresh.Option) (*refresh.Controller, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	opts := []refresh.Option{
		refresh.WithDelay(cfg.RefreshDelay),
		refresh.WithOverlap(cfg.OverlapPolicy()),
		refresh.WithLogger(logger.NewEnvLogger("[refresh]")),
	}
	opts = append(opts, extra...)

	return refresh.New(cat, random.NewSource(cfg.Seed), opts...), nil
}

// stdoutIsTerminal decides whether output gets colors.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
