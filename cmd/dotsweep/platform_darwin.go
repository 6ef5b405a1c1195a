//go:build darwin

package main

import (
	"github.com/dotsweep/dotsweep/internal/collectors"
	"github.com/dotsweep/dotsweep/internal/config"
)

func applyPlatformConfig(cfg *config.Config) {
	if cfg.DotnetRoot != "" {
		collectors.DotnetRoot = cfg.DotnetRoot
	}
}
