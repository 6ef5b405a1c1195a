//go:build darwin

package collectors

import (
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

// defaultDotnetRoot is where the official macOS installer packages put
// everything. Overridable through config for non-standard setups.
const defaultDotnetRoot = "/usr/local/share/dotnet"

// DotnetRoot is the install root the darwin collector scans. Set from config
// before the first Enumerate when the machine uses a non-default root.
var DotnetRoot = defaultDotnetRoot

type darwinCollector struct {
	fs afero.Fs
}

func newPlatformCollector() (Collector, error) {
	return &darwinCollector{fs: afero.NewOsFs()}, nil
}

// Enumerate scans the dotnet root for installed SDKs and runtimes. On Apple
// silicon the x64/ subroot holds Rosetta-emulated installs and is scanned as
// a second root with its own architecture.
func (c *darwinCollector) Enumerate() ([]bundle.Bundle, error) {
	roots := []struct {
		path string
		arch bundle.Arch
	}{
		{DotnetRoot, hostArch()},
	}
	if hostArch() == bundle.ArchArm64 {
		roots = append(roots, struct {
			path string
			arch bundle.Arch
		}{filepath.Join(DotnetRoot, "x64"), bundle.ArchX64})
	}

	var bundles []bundle.Bundle
	for _, root := range roots {
		found, err := scanDotnetRoot(c.fs, root.path, root.arch)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, found...)
	}
	return bundles, nil
}

func hostArch() bundle.Arch {
	if runtime.GOARCH == "arm64" {
		return bundle.ArchArm64
	}
	return bundle.ArchX64
}
