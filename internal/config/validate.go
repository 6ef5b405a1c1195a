package config

import (
	"fmt"
	"path/filepath"
)

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks the config for invalid values and returns all errors
// found. Values that would misbehave downstream are clamped to safe
// defaults; the returned errors are for the caller to log as warnings.
func (c *Config) Validate() []error {
	var errs []error

	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Errorf("log_level %q is not valid, using %q", c.LogLevel, "info"))
		c.LogLevel = "info"
	}

	if c.LogFormat != "" && !validLogFormats[c.LogFormat] {
		errs = append(errs, fmt.Errorf("log_format %q is not valid, using %q", c.LogFormat, "text"))
		c.LogFormat = "text"
	}

	if c.DotnetRoot != "" && !filepath.IsAbs(c.DotnetRoot) {
		errs = append(errs, fmt.Errorf("dotnet_root %q must be an absolute path, ignoring", c.DotnetRoot))
		c.DotnetRoot = ""
	}

	return errs
}
