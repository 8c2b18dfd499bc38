// Package config handles loading Cosmic's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/cosmic/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/cosmic/config.toml
//   - Search debounce: 500ms
//   - Currency: USD
//   - Log file: ~/.local/state/cosmic/cosmic.log
//   - Log level: info
//   - Log rotation size: 5 MB
//
// # TOML Format
//
//	search_debounce = "500ms"
//	currency = "USD"
//	log_file = "~/.local/state/cosmic/cosmic.log"
//	log_level = "info"
//	log_max_size_mb = 5
//
// All string values are trimmed. Paths starting with ~ are expanded to
// the user's home directory and made absolute.
//
// # Error Handling
//
// A missing file is not an error. A file that exists but cannot be read
// or parsed, or that carries an invalid value (a non-positive or
// unparseable duration, an unknown currency code, an unknown log level),
// makes Load return an error, which aborts startup.
package config
