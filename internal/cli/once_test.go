package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/workcheck/internal/errors"
	"github.com/rileyhilliard/workcheck/internal/refresh"
)

// decodeOnce unmarshals a success envelope holding a OnceOutput.
func decodeOnce(t *testing.T, data []byte) OnceOutput {
	t.Helper()
	var env struct {
		Success bool       `json:"success"`
		Data    OnceOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &env))
	require.True(t, env.Success)
	return env.Data
}

func TestRunOnce_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runOnce(&buf, testConfig(), onceOptions{}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Current Status Query: Is Ben Working?", lines[0])
	assert.Regexp(t, `^(YES|NO) +\S`, lines[1])
	assert.Regexp(t, `^LIVE TELEMETRY  CONFIDENCE: \d+%$`, lines[2])
}

func TestRunOnce_JSON(t *testing.T) {
	cfg := testConfig()
	cfg.Subject = "Alice"

	var buf bytes.Buffer
	require.NoError(t, runOnce(&buf, cfg, onceOptions{JSON: true}))

	out := decodeOnce(t, buf.Bytes())
	assert.Equal(t, "Alice", out.Subject)
	assert.NotEmpty(t, out.Message)
	assert.NotEmpty(t, out.Icon)
	assert.GreaterOrEqual(t, out.Confidence, refresh.MinConfidence)
	assert.LessOrEqual(t, out.Confidence, refresh.MaxConfidence)
	assert.Contains(t, []string{"red", "yellow", "green"}, out.ConfidenceTier)
	if out.Working {
		assert.Equal(t, "YES", out.Answer)
	} else {
		assert.Equal(t, "NO", out.Answer)
	}
}

func TestRunOnce_SameSeedSameAnswer(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, runOnce(&a, testConfig(), onceOptions{JSON: true}))
	require.NoError(t, runOnce(&b, testConfig(), onceOptions{JSON: true}))

	assert.Equal(t, a.String(), b.String())
}

func TestRunOnce_ExitCode(t *testing.T) {
	tests := []struct {
		name     string
		working  bool
		wantCode int
	}{
		{name: "working exits cleanly", working: true, wantCode: 0},
		{name: "not working sets exit status", working: false, wantCode: notWorkingExitCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.CatalogFile = singleStatusCatalog(t, tt.working, "Only option.")

			var buf bytes.Buffer
			err := runOnce(&buf, cfg, onceOptions{ExitCode: true})

			if tt.wantCode == 0 {
				require.NoError(t, err)
				return
			}
			code, ok := errors.GetExitCode(err)
			require.True(t, ok, "expected an exit error, got %v", err)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, buf.String(), "Only option.")
		})
	}
}

func TestRunOnce_NotWorkingWithoutExitCodeFlag(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogFile = singleStatusCatalog(t, false, "Napping.")

	var buf bytes.Buffer
	assert.NoError(t, runOnce(&buf, cfg, onceOptions{}))
}

func TestRunOnce_BadCatalog(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogFile = writeFile(t, "bad.yaml", "statuses: []\n")

	t.Run("plain returns the structured error", func(t *testing.T) {
		var buf bytes.Buffer
		err := runOnce(&buf, cfg, onceOptions{})
		assert.True(t, errors.IsCode(err, errors.ErrCatalog))
		assert.Empty(t, buf.String())
	})

	t.Run("json writes an error envelope", func(t *testing.T) {
		var buf bytes.Buffer
		err := runOnce(&buf, cfg, onceOptions{JSON: true})

		code, ok := errors.GetExitCode(err)
		require.True(t, ok)
		assert.Equal(t, 1, code)

		var env JSONEnvelope
		require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, ErrCodeCatalogInvalid, env.Error.Code)
	})
}

func TestRenderState_ColorDrawsCard(t *testing.T) {
	ctrl, err := buildController(testConfig())
	require.NoError(t, err)
	s := ctrl.Initialize()

	card := renderState("Ben", s, true)
	assert.Contains(t, card, "LIVE TELEMETRY")
	assert.Contains(t, card, "╭")

	plain := renderState("Ben", s, false)
	assert.NotContains(t, plain, "╭")
	assert.Contains(t, plain, s.Status.Message())
}
