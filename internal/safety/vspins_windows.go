//go:build windows

package safety

import (
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

// vs7Path lists installed Visual Studio versions as value names ("15.0",
// "16.0", "17.0") mapped to their install paths. Written by the VS installer
// since 2017.
const vs7Path = `SOFTWARE\Microsoft\VisualStudio\SxS\VS7`

// DetectPins reads the Visual Studio installation registry and pins the SDKs
// the installed IDE versions rely on. A machine without Visual Studio (or
// with an unreadable registry) yields no pins; detection failures are logged,
// never fatal.
func DetectPins(bundles []bundle.Bundle) []Pin {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, vs7Path, registry.READ|registry.WOW64_32KEY)
	if err != nil {
		slog.Debug("no Visual Studio installations found", "error", err)
		return nil
	}
	defer key.Close()

	names, err := key.ReadValueNames(-1)
	if err != nil {
		slog.Warn("cannot enumerate Visual Studio versions", "error", err)
		return nil
	}

	var pins []Pin
	for _, name := range names {
		major, ok := parseVSMajor(name)
		if !ok {
			continue
		}
		release, ok := releaseForMajor(major)
		if !ok {
			continue
		}
		pins = append(pins, pinNewestSDK(bundles, release.minSDK, release.name)...)
	}
	return pins
}

func parseVSMajor(value string) (uint64, bool) {
	majorPart, _, _ := strings.Cut(value, ".")
	major, err := strconv.ParseUint(majorPart, 10, 64)
	if err != nil {
		return 0, false
	}
	return major, true
}
