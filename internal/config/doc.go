// Package config loads, normalizes, and validates cdidc configuration data.
//
// It supplies repository defaults (including the platform browser helper),
// expands user paths with tilde shortcuts, and reads TOML files from
// ~/.config/cdidc/config.toml or ./cdidc.toml. A missing file yields the
// defaults, so the tool works without any configuration at all.
//
// Command-line flags always win; the CLI consults Config only for values the
// user did not pass explicitly.
package config
