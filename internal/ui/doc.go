// Package ui provides terminal output formatting for the apify CLI.
//
// This package handles all user-facing output with consistent styling:
//   - Info, success, failure, and warning messages
//   - Dimmed text for secondary information
//   - Interactive prompts (yes/no, string input)
//
// Messages go to ui.Out (defaults to os.Stderr) and prompts read from
// ui.In (defaults to os.Stdin) so tests can capture and script them.
//
// Example usage:
//
//	ui.Info("Creating %s", consts.LocalConfigName)
//	ui.Success("Project initialized")
//
//	if name := ui.AskString("Project name"); name != "" {
//	    // ...
//	}
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
