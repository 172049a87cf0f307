package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/workcheck/internal/config"
	"github.com/rileyhilliard/workcheck/internal/errors"
	"github.com/rileyhilliard/workcheck/internal/refresh"
	"github.com/rileyhilliard/workcheck/internal/ui"
)

// DefaultWatchInterval is the time between refreshes in watch mode.
const DefaultWatchInterval = 5 * time.Second

var (
	watchEvery time.Duration
	watchCount int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-check on an interval and stream the results",
	Long: `Print the status card, then run a refresh cycle every --every until
interrupted (Ctrl+C) or until --count cycles have completed. Each cycle
prints the loading line followed by the new card.

Examples:
  workcheck watch
  workcheck watch --every 2s --count 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd.Flags())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runWatch(ctx, cmd.OutOrStdout(), cfg, watchOptions{
			Every: watchEvery,
			Count: watchCount,
			Color: stdoutIsTerminal(),
		})
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchEvery, "every", DefaultWatchInterval, "time between checks")
	watchCmd.Flags().IntVar(&watchCount, "count", 0, "stop after this many checks (0 = until interrupted)")
	rootCmd.AddCommand(watchCmd)
}

type watchOptions struct {
	Every time.Duration
	Count int
	Color bool
}

// validate checks the watch options against the refresh delay.
func (o watchOptions) validate(delay time.Duration) error {
	if o.Every <= delay {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("--every (%s) must be longer than the refresh delay (%s)", o.Every, delay),
			"Raise --every or lower --delay")
	}
	if o.Count < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("--count must not be negative, got %d", o.Count),
			"Use 0 to run until interrupted")
	}
	return nil
}

// runWatch drives the controller's own timer from a ticker and prints every
// state change. It returns nil when ctx is done or Count cycles completed.
func runWatch(ctx context.Context, w io.Writer, cfg *config.Config, opts watchOptions) error {
	if err := opts.validate(cfg.RefreshDelay); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)

	// Room for a loading and a completion notification per cycle.
	changes := make(chan refresh.State, 4)
	ctrl, err := buildController(cfg, refresh.WithOnChange(func(s refresh.State) {
		select {
		case changes <- s:
		case <-done:
		}
	}))
	if err != nil {
		return err
	}
	defer ctrl.Close()

	fmt.Fprintln(w, renderState(cfg.Subject, ctrl.Initialize(), opts.Color))

	ticker := time.NewTicker(opts.Every)
	defer ticker.Stop()

	started, completed := 0, 0
	for opts.Count == 0 || completed < opts.Count {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			if opts.Count > 0 && started >= opts.Count {
				continue
			}
			if ctrl.Refresh() {
				started++
			}

		case s := <-changes:
			if s.Loading {
				fmt.Fprintf(w, "\n%s %s\n", ui.SymbolProgress, ui.ButtonLoading)
				continue
			}
			completed++
			fmt.Fprintln(w, renderState(cfg.Subject, s, opts.Color))
		}
	}
	return nil
}
