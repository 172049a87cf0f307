package config

import (
	"fmt"

	"github.com/rileyhilliard/workcheck/internal/errors"
	"github.com/rileyhilliard/workcheck/internal/refresh"
)

// Validate checks the config and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but workcheck only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade workcheck")
	}

	if cfg.Subject == "" {
		return errors.New(errors.ErrConfig,
			"Subject is empty",
			"Set 'subject' to the name of the person being checked on")
	}

	if cfg.RefreshDelay <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("refresh_delay must be positive, got %s", cfg.RefreshDelay),
			"Use a duration like 400ms")
	}
	if cfg.RefreshDelay > MaxRefreshDelay {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("refresh_delay %s is longer than %s", cfg.RefreshDelay, MaxRefreshDelay),
			"Nobody waits that long for a satellite. Try 400ms")
	}

	if _, err := refresh.ParseOverlap(cfg.Overlap); err != nil {
		return err
	}

	return nil
}

// OverlapPolicy returns the parsed overlap policy. Call Validate first.
func (c *Config) OverlapPolicy() refresh.OverlapPolicy {
	p, _ := refresh.ParseOverlap(c.Overlap)
	return p
}
