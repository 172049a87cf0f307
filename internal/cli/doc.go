// Package cli implements the workcheck command-line interface.
//
// Every command is a thin cobra wrapper around a plain function that takes
// its writer and settings explicitly, so the logic can be tested without a
// terminal:
//
//	workcheck            - interactive status card (Bubble Tea)
//	workcheck once       - sample once and print the card, or --json
//	workcheck watch      - print a refresh cycle every --every
//	workcheck catalog    - list the active status catalog
//	workcheck init       - write ~/.config/workcheck/config.yaml
//	workcheck version    - print build information
//
// # Settings
//
// Settings come from three layers, later ones winning: the config file
// (see internal/config), WORKCHECK_* environment variables, and the
// persistent flags --subject, --delay, --seed, --catalog and --overlap.
// Only flags the user actually set override the file. The merged result is
// validated once in loadSettings and turned into a refresh.Controller by
// buildController.
//
// # Output
//
// Output is colored only when stdout is a terminal. Errors are printed in
// the structured format from internal/errors, and commands that want a
// specific exit status return an errors.ExitError.
package cli
