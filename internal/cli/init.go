package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/workcheck/internal/config"
	"github.com/rileyhilliard/workcheck/internal/errors"
	"github.com/rileyhilliard/workcheck/internal/ui"
)

var initFlags InitOptions

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the workcheck config file",
	Long: `Create ~/.config/workcheck/config.yaml (or the file given with --config).

Runs a short interactive form by default. With --non-interactive the values
come from flags and defaults.

Examples:
  workcheck init
  workcheck init --non-interactive --subject Alice --overlap ignore`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := initFlags
		opts.Path, _ = cmd.Flags().GetString("config")
		if cmd.Flags().Changed("subject") {
			opts.Subject, _ = cmd.Flags().GetString("subject")
		}
		if cmd.Flags().Changed("overlap") {
			opts.Overlap, _ = cmd.Flags().GetString("overlap")
		}
		if cmd.Flags().Changed("delay") {
			opts.Delay, _ = cmd.Flags().GetDuration("delay")
		}
		return Init(cmd.OutOrStdout(), opts)
	},
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.Overwrite, "force", false, "overwrite an existing config without asking")
	initCmd.Flags().BoolVar(&initFlags.NonInteractive, "non-interactive", false, "skip prompts and use flags and defaults")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string        // Config file; empty means the default location
	Subject        string        // Pre-specified subject
	Overlap        string        // Pre-specified overlap policy
	Delay          time.Duration // Pre-specified refresh delay
	Overwrite      bool          // Overwrite existing config without asking
	NonInteractive bool          // Skip prompts, use defaults
}

// Init writes a new config file.
func Init(w io.Writer, opts InitOptions) error {
	path := config.ExpandTilde(opts.Path)
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"Cannot work out where to put the config file",
			"Pass --config with an explicit path")
	}

	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if s := strings.TrimSpace(opts.Subject); s != "" {
		cfg.Subject = s
	}
	if o := strings.TrimSpace(opts.Overlap); o != "" {
		cfg.Overlap = strings.ToLower(o)
	}
	if opts.Delay != 0 {
		cfg.RefreshDelay = opts.Delay
	}

	if !opts.NonInteractive {
		if err := runInitForm(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s Wrote %s\n", ui.SymbolSuccess, path)
	return nil
}

// runInitForm asks for the subject, delay and overlap policy, starting from cfg.
func runInitForm(cfg *config.Config) error {
	subject := cfg.Subject
	delay := cfg.RefreshDelay.String()
	overlap := cfg.Overlap

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Who are we checking on?").
				Description("Shown in the card title").
				Placeholder(config.DefaultSubject).
				Value(&subject).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("subject is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Satellite query time").
				Description("How long each check pretends to take").
				Placeholder(config.DefaultRefreshDelay.String()).
				Value(&delay).
				Validate(validateDelay),
			huh.NewSelect[string]().
				Title("Checking again while a query is running").
				Options(
					huh.NewOption("restart the query", "restart"),
					huh.NewOption("ignore the click", "ignore"),
				).
				Value(&overlap),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive")
	}

	d, _ := time.ParseDuration(strings.TrimSpace(delay))
	cfg.Subject = strings.TrimSpace(subject)
	cfg.RefreshDelay = d
	cfg.Overlap = overlap
	return nil
}

// validateDelay accepts durations in (0, config.MaxRefreshDelay].
func validateDelay(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a duration (try 400ms)")
	}
	if d <= 0 || d > config.MaxRefreshDelay {
		return fmt.Errorf("must be between 1ms and %s", config.MaxRefreshDelay)
	}
	return nil
}
