package config

import "runtime"

const (
	defaultConfigPath  = "~/.config/cdidc/config.toml"
	projectConfigName  = "cdidc.toml"
	defaultLogFormat   = "console"
	defaultLogLevel    = "warn"
	defaultWaitSeconds = 0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Disc: Disc{
			WaitSeconds: defaultWaitSeconds,
		},
		Submission: Submission{
			Browser: DefaultBrowser(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// DefaultBrowser returns the platform helper that opens a URL in the user's
// preferred browser.
func DefaultBrowser() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}
