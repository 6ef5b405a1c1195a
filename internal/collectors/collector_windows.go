//go:build windows

package collectors

import (
	"log/slog"

	"golang.org/x/sys/windows/registry"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

// Uninstall registry hives holding per-machine installer entries.
var uninstallRegistryPaths = []struct {
	root registry.Key
	path string
}{
	// 64-bit installers
	{registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
	// 32-bit installers on 64-bit Windows
	{registry.LOCAL_MACHINE, `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`},
}

type windowsCollector struct{}

func newPlatformCollector() (Collector, error) {
	return &windowsCollector{}, nil
}

// Enumerate reads every uninstall registry key and keeps the ones that
// classify as .NET bundles. Keys that cannot be opened or parsed are skipped
// with a warning; a single bad key never aborts the enumeration.
func (c *windowsCollector) Enumerate() ([]bundle.Bundle, error) {
	var bundles []bundle.Bundle

	for _, regPath := range uninstallRegistryPaths {
		items, err := collectFromRegistry(regPath.root, regPath.path)
		if err != nil {
			// The WOW6432Node subtree does not exist on 32-bit hosts.
			slog.Debug("skipping registry subtree",
				"path", regPath.path, "error", err)
			continue
		}
		bundles = append(bundles, items...)
	}

	return bundles, nil
}

func collectFromRegistry(rootKey registry.Key, path string) ([]bundle.Bundle, error) {
	key, err := registry.OpenKey(rootKey, path, registry.READ)
	if err != nil {
		return nil, err
	}
	defer key.Close()

	subkeys, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil, err
	}

	var bundles []bundle.Bundle

	for _, subkeyName := range subkeys {
		subkey, err := registry.OpenKey(key, subkeyName, registry.READ)
		if err != nil {
			slog.Warn("cannot open uninstall key", "key", subkeyName, "error", err)
			continue
		}

		entry := readUninstallKey(subkey, subkeyName)
		subkey.Close()

		b, ok := classifyEntry(entry)
		if !ok {
			continue
		}
		if b.InstallLocation == "" {
			b.InstallLocation = path + `\` + subkeyName
		}
		bundles = append(bundles, b)
	}

	return bundles, nil
}

func readUninstallKey(key registry.Key, keyName string) registryEntry {
	e := registryEntry{KeyName: keyName}

	e.DisplayName, _, _ = key.GetStringValue("DisplayName")
	e.DisplayVersion, _, _ = key.GetStringValue("DisplayVersion")
	e.InstallLocation, _, _ = key.GetStringValue("InstallLocation")

	// Prefer the quiet variant when the installer registered one.
	if quiet, _, err := key.GetStringValue("QuietUninstallString"); err == nil && quiet != "" {
		e.UninstallString = quiet
	} else {
		e.UninstallString, _, _ = key.GetStringValue("UninstallString")
	}

	return e
}
