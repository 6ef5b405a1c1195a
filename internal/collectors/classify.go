package collectors

import (
	"regexp"
	"strings"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

// registryEntry holds the raw values read from one uninstall registry key.
// Kept platform-neutral so classification is testable off-Windows.
type registryEntry struct {
	KeyName         string
	DisplayName     string
	DisplayVersion  string
	InstallLocation string
	UninstallString string
}

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[0-9A-Za-z][0-9A-Za-z.\-]*)?`)

// archMarkers appear in the display names Microsoft installers write,
// e.g. "Microsoft .NET SDK 8.0.100 (x64)".
var archMarkers = []struct {
	marker string
	arch   bundle.Arch
}{
	{"(x64)", bundle.ArchX64},
	{"(x86)", bundle.ArchX86},
	{"(arm64)", bundle.ArchArm64},
	{"x64", bundle.ArchX64},
	{"x86", bundle.ArchX86},
	{"arm64", bundle.ArchArm64},
}

// classifyEntry decides whether an uninstall registry entry describes a .NET
// bundle and, if so, builds the Bundle for it. Returns false for unrelated
// software and for .NET entries too malformed to use (no recognizable
// version or no uninstall string); the caller logs and skips those.
func classifyEntry(e registryEntry) (bundle.Bundle, bool) {
	name := strings.TrimSpace(e.DisplayName)
	if name == "" {
		return bundle.Bundle{}, false
	}
	lower := strings.ToLower(name)

	kind, ok := classifyKind(lower)
	if !ok {
		return bundle.Bundle{}, false
	}

	raw := versionPattern.FindString(name)
	if raw == "" {
		raw = versionPattern.FindString(e.DisplayVersion)
	}
	if raw == "" || e.UninstallString == "" {
		return bundle.Bundle{}, false
	}

	return bundle.Bundle{
		Kind:             kind,
		Version:          bundle.ParseVersion(raw),
		RawVersion:       raw,
		Arch:             classifyArch(lower),
		DisplayName:      name,
		InstallLocation:  e.InstallLocation,
		UninstallCommand: e.UninstallString,
	}, true
}

func classifyKind(lower string) (bundle.Kind, bool) {
	switch {
	case strings.Contains(lower, ".net framework"):
		// .NET Framework servicing entries are not managed here.
		return "", false
	case strings.Contains(lower, "windows desktop runtime"):
		// "Microsoft Windows Desktop Runtime - 8.0.0 (x64)" lacks ".net".
		return bundle.KindDesktopRuntime, true
	case !strings.Contains(lower, ".net"):
		return "", false
	case strings.Contains(lower, "sdk"):
		return bundle.KindSDK, true
	case strings.Contains(lower, "windows server hosting"):
		return bundle.KindHostingBundle, true
	case strings.Contains(lower, "asp.net core"):
		return bundle.KindAspNetRuntime, true
	case strings.Contains(lower, "runtime"):
		return bundle.KindRuntime, true
	default:
		return "", false
	}
}

func classifyArch(lower string) bundle.Arch {
	for _, m := range archMarkers {
		if strings.Contains(lower, m.marker) {
			return m.arch
		}
	}
	return bundle.ArchUnknown
}
