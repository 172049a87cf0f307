package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"strings"

	"github.com/rileyhilliard/workcheck/internal/errors"
)

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output uses this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigNotFound = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "CONFIG_INVALID"
	ErrCodeCatalogInvalid = "CATALOG_INVALID"
	ErrCodeUIUnavailable  = "UI_UNAVAILABLE"
	ErrCodeUnknown        = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	})
}

func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with a machine-readable code.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	var wcErr *errors.Error
	if stderrors.As(err, &wcErr) {
		return &JSONError{
			Code:       mapErrorCode(wcErr.Code, wcErr.Message),
			Message:    wcErr.Message,
			Suggestion: wcErr.Suggestion,
		}
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	switch internalCode {
	case errors.ErrConfig:
		if strings.Contains(strings.ToLower(message), "not found") {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrCatalog:
		return ErrCodeCatalogInvalid
	case errors.ErrUI:
		return ErrCodeUIUnavailable
	}
	return ErrCodeUnknown
}

// jsonFailure reports err as JSON and turns it into an exit status, so the
// structured error is not printed a second time.
func jsonFailure(w io.Writer, err error) error {
	if writeErr := WriteJSONFromError(w, err); writeErr != nil {
		return err
	}
	return errors.NewExitError(1)
}
