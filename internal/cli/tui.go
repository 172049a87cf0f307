package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rileyhilliard/workcheck/internal/config"
	"github.com/rileyhilliard/workcheck/internal/errors"
	"github.com/rileyhilliard/workcheck/internal/logger"
	"github.com/rileyhilliard/workcheck/internal/widget"
)

// debugLogFile receives log output while the TUI owns the terminal.
const debugLogFile = "workcheck-debug.log"

// runTUI shows the interactive status card until the user quits.
func runTUI(cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !stdoutIsTerminal() {
		return errors.New(errors.ErrUI,
			"The status card needs an interactive terminal",
			"Use 'workcheck once' or 'workcheck watch' in scripts and pipes")
	}

	if logger.DebugEnabled() {
		f, err := tea.LogToFile(debugLogFile, "workcheck")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrUI,
				"Cannot open the debug log",
				"Check write permissions in the current directory, or unset "+logger.DebugEnv)
		}
		defer f.Close()
		logger.SetOutput(f)
		defer logger.SetOutput(os.Stderr)
	}

	ctrl, err := buildController(cfg)
	if err != nil {
		return err
	}
	// Quitting closes the controller too; this covers a crashed program.
	defer ctrl.Close()

	model := widget.NewModel(ctrl, widget.Options{
		Subject: cfg.Subject,
		Logger:  logger.NewEnvLogger("[widget]"),
	})

	p := tea.NewProgram(model, programOptions(cfg)...)
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrUI,
			"The status card stopped unexpectedly",
			"Try --no-alt-screen, or use 'workcheck once'")
	}
	return nil
}

// programOptions maps settings to Bubble Tea program options.
func programOptions(cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return opts
}
