package cli

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/workcheck/internal/config"
	"github.com/rileyhilliard/workcheck/internal/errors"
	"github.com/rileyhilliard/workcheck/internal/refresh"
)

func parseSettingsFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addSettingsFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadSettings_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := loadSettings(parseSettingsFlags(t))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultSubject, cfg.Subject)
	assert.Equal(t, config.DefaultRefreshDelay, cfg.RefreshDelay)
	assert.Equal(t, refresh.OverlapRestart, cfg.OverlapPolicy())
	assert.Empty(t, cfg.CatalogFile)
	assert.True(t, cfg.AltScreen)
}

func TestLoadSettings_FlagsOverrideFile(t *testing.T) {
	isolateHome(t)
	path := writeFile(t, "config.yaml", "subject: Carol\nrefresh_delay: 1s\noverlap: ignore\nseed: 9\n")

	cfg, err := loadSettings(parseSettingsFlags(t,
		"--config", path,
		"--subject", "  Alice ",
		"--seed", "3",
	))
	require.NoError(t, err)

	assert.Equal(t, "Alice", cfg.Subject)
	assert.Equal(t, int64(3), cfg.Seed)
	// untouched flags keep file values
	assert.Equal(t, time.Second, cfg.RefreshDelay)
	assert.Equal(t, refresh.OverlapIgnore, cfg.OverlapPolicy())
}

func TestLoadSettings_EnvOverride(t *testing.T) {
	isolateHome(t)
	t.Setenv("WORKCHECK_SUBJECT", "Dana")

	cfg, err := loadSettings(parseSettingsFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "Dana", cfg.Subject)
}

func TestLoadSettings_OverlapFlagIsCaseInsensitive(t *testing.T) {
	isolateHome(t)

	cfg, err := loadSettings(parseSettingsFlags(t, "--overlap", "IGNORE"))
	require.NoError(t, err)
	assert.Equal(t, refresh.OverlapIgnore, cfg.OverlapPolicy())
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero delay", []string{"--delay", "0s"}},
		{"huge delay", []string{"--delay", "2m"}},
		{"unknown overlap", []string{"--overlap", "queue"}},
		{"blank subject", []string{"--subject", "   "}},
		{"missing config file", []string{"--config", "/nonexistent/workcheck.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateHome(t)

			_, err := loadSettings(parseSettingsFlags(t, tt.args...))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig), "got %v", err)
		})
	}
}

func TestBuildController_UsesSettings(t *testing.T) {
	cfg := testConfig()
	cfg.RefreshDelay = 25 * time.Millisecond
	cfg.Overlap = "ignore"

	ctrl, err := buildController(cfg)
	require.NoError(t, err)
	defer ctrl.Close()

	assert.Equal(t, 25*time.Millisecond, ctrl.Delay())
	assert.Equal(t, refresh.OverlapIgnore, ctrl.Overlap())
}

func TestBuildController_SeedIsReproducible(t *testing.T) {
	a, err := buildController(testConfig())
	require.NoError(t, err)
	b, err := buildController(testConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Initialize(), b.Initialize())
}

func TestBuildController_CustomCatalog(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogFile = singleStatusCatalog(t, true, "Writing tests.")

	ctrl, err := buildController(cfg)
	require.NoError(t, err)

	s := ctrl.Initialize()
	assert.Equal(t, "Writing tests.", s.Status.Message())
	assert.True(t, s.Status.Working())
}

func TestBuildController_MissingCatalog(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogFile = "/nonexistent/statuses.yaml"

	_, err := buildController(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCatalog))
}

func TestBuildController_ExtraOptionsApplyLast(t *testing.T) {
	ctrl, err := buildController(testConfig(), refresh.WithDelay(7*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 7*time.Millisecond, ctrl.Delay())
}
