//go:build !darwin

package main

import "github.com/dotsweep/dotsweep/internal/config"

// The dotnet_root override only applies to the macOS filesystem collector;
// Windows discovery goes through the registry.
func applyPlatformConfig(cfg *config.Config) {}
