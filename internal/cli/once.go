package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/workcheck/internal/config"
	"github.com/rileyhilliard/workcheck/internal/errors"
	"github.com/rileyhilliard/workcheck/internal/refresh"
	"github.com/rileyhilliard/workcheck/internal/ui"
	"github.com/rileyhilliard/workcheck/internal/widget"
)

// notWorkingExitCode is returned by "once --exit-code" when the answer is NO.
// It differs from 1 so scripts can tell it apart from a failure.
const notWorkingExitCode = 2

var (
	onceJSON     bool
	onceExitCode bool
)

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Check once and print the result",
	Long: `Take a single sample and print the status card without starting the
interactive view. Useful in scripts, prompts and pipes.

Examples:
  workcheck once
  workcheck once --json
  workcheck once --exit-code && echo "back to work"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		opts := onceOptions{
			JSON:     onceJSON,
			ExitCode: onceExitCode,
			Color:    stdoutIsTerminal(),
		}

		cfg, err := loadSettings(cmd.Flags())
		if err != nil {
			if opts.JSON {
				return jsonFailure(out, err)
			}
			return err
		}
		return runOnce(out, cfg, opts)
	},
}

func init() {
	onceCmd.Flags().BoolVar(&onceJSON, "json", false, "output in JSON format")
	onceCmd.Flags().BoolVar(&onceExitCode, "exit-code", false, fmt.Sprintf("exit with status %d when the answer is NO", notWorkingExitCode))
	rootCmd.AddCommand(onceCmd)
}

type onceOptions struct {
	JSON     bool
	ExitCode bool
	Color    bool
}

// OnceOutput is the JSON shape of a single sample.
type OnceOutput struct {
	Subject        string `json:"subject"`
	Working        bool   `json:"working"`
	Answer         string `json:"answer"`
	Message        string `json:"message"`
	Icon           string `json:"icon"`
	Confidence     int    `json:"confidence"`
	ConfidenceTier string `json:"confidence_tier"`
}

// newOnceOutput flattens a state for JSON output.
func newOnceOutput(subject string, s refresh.State) OnceOutput {
	return OnceOutput{
		Subject:        subject,
		Working:        s.Status.Working(),
		Answer:         string(s.Status.Answer()),
		Message:        s.Status.Message(),
		Icon:           s.Status.Icon(),
		Confidence:     s.Confidence,
		ConfidenceTier: ui.ConfidenceTier(s.Confidence).String(),
	}
}

// runOnce samples once and prints the result.
func runOnce(w io.Writer, cfg *config.Config, opts onceOptions) error {
	ctrl, err := buildController(cfg)
	if err != nil {
		if opts.JSON {
			return jsonFailure(w, err)
		}
		return err
	}
	defer ctrl.Close()

	state := ctrl.Initialize()

	if opts.JSON {
		if err := WriteJSONSuccess(w, newOnceOutput(cfg.Subject, state)); err != nil {
			return errors.Wrap(err, "Failed to write JSON output")
		}
	} else {
		fmt.Fprintln(w, renderState(cfg.Subject, state, opts.Color))
	}

	if opts.ExitCode && !state.Status.Working() {
		return errors.NewExitError(notWorkingExitCode)
	}
	return nil
}

// renderState draws the full card for terminals and a compact plain text
// version otherwise.
func renderState(subject string, s refresh.State, color bool) string {
	if color {
		return widget.RenderCard(subject, s, ui.Icon("RefreshCw"))
	}
	return formatPlainState(subject, s)
}

// formatPlainState renders a state without colors or box drawing:
//
//	Current Status Query: Is Ben Working?
//	YES  Optimizing database queries...
//	LIVE TELEMETRY  CONFIDENCE: 87%
func formatPlainState(subject string, s refresh.State) string {
	lines := []string{
		ui.Title(subject),
		fmt.Sprintf("%-4s %s", s.Status.Answer(), s.Status.Message()),
		ui.TelemetryLabel + "  " + ui.ConfidenceLabel + " " + ui.FormatConfidence(s.Confidence),
	}
	return strings.Join(lines, "\n")
}
