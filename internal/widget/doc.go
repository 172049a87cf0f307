// Package widget implements the interactive status card as a Bubble Tea program.
//
// The card answers whether the subject is working: a large YES or NO, the
// status icon and message, a telemetry strip with the confidence score and a
// refresh button.
//
// # Architecture
//
// The package follows The Elm Architecture (Model-Update-View):
//
//   - Model: wraps a refresh.Controller plus view-only state (spinner, help, size)
//   - Update: maps keys, mouse clicks and timer messages to controller calls
//   - View: renders the controller's State with lipgloss
//
// The controller is initialized in NewModel, so the first frame already shows
// a sampled status.
//
// # Message Flow
//
// A refresh runs in two steps:
//
//  1. enter, space, r or a left click calls Controller.BeginRefresh, which sets
//     Loading and returns a ticket; the spinner starts
//  2. tea.Tick fires refreshDoneMsg{ticket} after Controller.Delay, and
//     Controller.CompleteRefresh resamples if that ticket is still current
//
// Superseded tickets are dropped by the controller. Quitting closes the
// controller, so a tick still in flight cannot change state afterwards.
//
// # Key Bindings
//
//	enter/space/r  Check again
//	?              Toggle help
//	q/esc/ctrl+c   Quit
package widget
