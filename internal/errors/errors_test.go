package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrCatalog,
		ErrUI,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid refresh_delay in config.yaml",
			suggestion: "Use a duration like 400ms",
		},
		{
			name:       "catalog error",
			code:       ErrCatalog,
			message:    "Catalog has no statuses",
			suggestion: "Add at least one entry under 'statuses'",
		},
		{
			name:       "ui error",
			code:       ErrUI,
			message:    "Not a terminal",
			suggestion: "Use 'workcheck once' instead",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name: "basic error formatting",
			err:  New(ErrConfig, "Invalid configuration", "Check config.yaml syntax"),
			expectedParts: []string{
				"Invalid configuration",
				"Check config.yaml syntax",
			},
		},
		{
			name: "error with failure symbol",
			err:  New(ErrCatalog, "Catalog unreadable", "Try again"),
			expectedParts: []string{
				"✗",
				"Catalog unreadable",
			},
		},
		{
			name: "error without suggestion",
			err:  New(ErrUI, "Render failed", ""),
			expectedParts: []string{
				"Render failed",
			},
			notExpected: []string{
				"\n\n  \n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part, "output should contain %q", part)
			}

			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part, "output should not contain %q", part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("terminal closed")
	wrapped := Wrap(cause, "TUI exited unexpectedly")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrUI, wrapped.Code, "Wrap should default to ErrUI code")
	assert.Equal(t, "TUI exited unexpectedly", wrapped.Message)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := WrapWithCode(cause, ErrConfig, "Failed to load config", "Run 'workcheck init'")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, "Failed to load config", wrapped.Message)
	assert.Equal(t, "Run 'workcheck init'", wrapped.Suggestion)
	assert.Equal(t, cause, wrapped.Cause)
	assert.Contains(t, wrapped.Error(), "file not found")
}

func TestErrorsIsAndAs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := WrapWithCode(cause, ErrCatalog, "Catalog error", "")

	assert.True(t, errors.Is(wrapped, cause))

	var wcErr *Error
	require.True(t, errors.As(fmt.Errorf("outer: %w", wrapped), &wcErr))
	assert.Equal(t, ErrCatalog, wcErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrCatalog))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("yaml: line 3: did not find expected key"),
		ErrCatalog,
		"Cannot parse catalog file",
		"Check the YAML syntax",
	)

	lines := strings.Split(err.Error(), "\n")

	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "✗"), "First line should start with failure symbol")
	assert.Contains(t, lines[0], "Cannot parse catalog file")
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOk   bool
	}{
		{"ExitError returns code", NewExitError(1), 1, true},
		{"ExitError with zero", NewExitError(0), 0, true},
		{"wrapped ExitError", fmt.Errorf("once: %w", NewExitError(3)), 3, true},
		{"standard error returns false", errors.New("standard error"), 0, false},
		{"nil error returns false", nil, 0, false},
		{"structured Error returns false", New(ErrUI, "test", ""), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := GetExitCode(tt.err)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestExitError_Message(t *testing.T) {
	assert.Equal(t, "exit code 137", NewExitError(137).Error())
}
