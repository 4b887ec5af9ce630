package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeDisc()
	c.normalizeSubmission()
	return c.normalizeLogging()
}

func (c *Config) normalizeDisc() {
	c.Disc.Device = strings.TrimSpace(c.Disc.Device)
}

func (c *Config) normalizeSubmission() {
	c.Submission.Browser = strings.TrimSpace(c.Submission.Browser)
	if c.Submission.Browser == "" {
		c.Submission.Browser = DefaultBrowser()
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	file := strings.TrimSpace(c.Logging.File)
	if file == "" {
		c.Logging.File = ""
		return nil
	}
	expanded, err := expandPath(file)
	if err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	c.Logging.File = expanded
	return nil
}
