// Package app is the composition root for Cosmic.
//
// # Overview
//
// Run wires configuration, logging, preferences, the catalog, the state
// store and the UI, then blocks in the Bubble Tea program until the user
// quits or the context is cancelled.
//
// # Startup
//
//  1. Load ~/.config/cosmic/config.toml (or --config) and apply flag overrides
//  2. Open the rotating log file (slog text handler over lumberjack)
//  3. Load ~/.config/cosmic/prefs.toml for the theme and cart format
//  4. Build the store on the built-in catalog with the real clock
//  5. Start the TUI
//
// A broken config file or an invalid override aborts startup with an
// error. Preferences never do; they fall back to defaults.
//
// # Components
//
//   - app.go: Options, Run and flag overrides
//   - logging.go: slog logger backed by a lumberjack rotating file
package app
