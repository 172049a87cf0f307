package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/workcheck/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "workcheck",
	Short: "Ask the satellites whether someone is working",
	Long: `workcheck shows a live status card answering one question:
is the subject working right now?

Each check queries a (very fictional) satellite, picks a status from the
catalog and reports it with a confidence score.

Examples:
  workcheck
  workcheck --subject Alice
  workcheck once --json
  workcheck watch --every 2s --count 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd.Flags())
		if err != nil {
			return err
		}
		noAlt, _ := cmd.Flags().GetBool("no-alt-screen")
		if noAlt {
			cfg.AltScreen = false
		}
		return runTUI(cfg)
	},
}

func init() {
	addSettingsFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().Bool("no-alt-screen", false, "draw the card inline instead of in the alternate screen")
}

// Execute runs the root command and exits with the right status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := errors.GetExitCode(err); ok {
			os.Exit(code)
		}

		fmt.Fprintln(os.Stderr, err)
		if isUnknownCommandError(err) {
			fmt.Fprintln(os.Stderr, "Run 'workcheck --help' to see the available commands.")
		}
		os.Exit(1)
	}
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}
