//go:build darwin

package safety

import (
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

const vsMacAppPath = "/Applications/Visual Studio.app"

// vsMacMinSDK is the floor for SDKs pinned by Visual Studio for Mac. Every
// supported VS for Mac release (8.x and 17.x) targets .NET Core 3.1 or later.
var vsMacMinSDK = semver.MustParse("3.1.0")

// DetectPins checks for a Visual Studio for Mac installation and pins the
// newest SDK it relies on. Absence of the app (the common case) yields no
// pins.
func DetectPins(bundles []bundle.Bundle) []Pin {
	if _, err := os.Stat(vsMacAppPath); err != nil {
		return nil
	}

	ide := "Visual Studio for Mac"
	if version := vsMacVersion(); version != "" {
		ide = ide + " " + version
	}
	return pinNewestSDK(bundles, vsMacMinSDK, ide)
}

// vsMacVersion reads the app's marketing version. Best effort: an empty
// string just means the pin reason omits the version.
func vsMacVersion() string {
	out, err := exec.Command("defaults", "read",
		vsMacAppPath+"/Contents/Info", "CFBundleShortVersionString").Output()
	if err != nil {
		slog.Debug("cannot read Visual Studio for Mac version", "error", err)
		return ""
	}
	return strings.TrimSpace(string(out))
}
