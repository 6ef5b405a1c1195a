package bundle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Kind identifies what flavor of .NET component a bundle is.
type Kind string

const (
	KindSDK            Kind = "sdk"
	KindRuntime        Kind = "runtime"
	KindAspNetRuntime  Kind = "aspnet-runtime"
	KindDesktopRuntime Kind = "desktop-runtime"
	KindHostingBundle  Kind = "hosting-bundle"
)

// kindRank controls display order: SDKs first, then runtimes by specificity.
var kindRank = map[Kind]int{
	KindSDK:            0,
	KindRuntime:        1,
	KindAspNetRuntime:  2,
	KindDesktopRuntime: 3,
	KindHostingBundle:  4,
}

// Label returns the human-readable name for a kind.
func (k Kind) Label() string {
	switch k {
	case KindSDK:
		return ".NET SDK"
	case KindRuntime:
		return ".NET Runtime"
	case KindAspNetRuntime:
		return "ASP.NET Core Runtime"
	case KindDesktopRuntime:
		return ".NET Desktop Runtime"
	case KindHostingBundle:
		return ".NET Hosting Bundle"
	default:
		return string(k)
	}
}

// Arch identifies the target CPU architecture of a bundle.
type Arch string

const (
	ArchX64     Arch = "x64"
	ArchX86     Arch = "x86"
	ArchArm64   Arch = "arm64"
	ArchUnknown Arch = ""
)

// Bundle describes one discovered SDK or runtime installation. Values are
// immutable once a collector returns them.
type Bundle struct {
	Kind       Kind
	Version    *semver.Version // nil when RawVersion could not be parsed
	RawVersion string          // version string exactly as discovered
	Arch       Arch
	DisplayName     string
	InstallLocation string
	// UninstallCommand is platform-specific: on Windows an uninstaller
	// executable plus arguments, on macOS a space-separated list of
	// directories to delete.
	UninstallCommand string
}

// Key returns the (kind, version, architecture) identity of a bundle.
// Unique within one machine's snapshot; duplicates indicate a collector bug.
func (b Bundle) Key() string {
	return fmt.Sprintf("%s|%s|%s", b.Kind, b.RawVersion, b.Arch)
}

// Label returns a short human description, e.g. ".NET SDK 8.0.100 (x64)".
func (b Bundle) Label() string {
	if b.Arch == ArchUnknown {
		return fmt.Sprintf("%s %s", b.Kind.Label(), b.RawVersion)
	}
	return fmt.Sprintf("%s %s (%s)", b.Kind.Label(), b.RawVersion, b.Arch)
}

// Entry is a bundle annotated with its computed removability. A fresh set of
// entries is produced on every enumeration pass and never mutated in place.
type Entry struct {
	Bundle
	CanUninstall bool
	// Reason explains why the bundle cannot be removed; empty when it can.
	Reason string
}

// Dedupe drops bundles whose Key was already seen, preserving first-seen
// order. The dropped duplicates are returned so the caller can report them.
func Dedupe(bundles []Bundle) (unique, dropped []Bundle) {
	seen := make(map[string]bool, len(bundles))
	for _, b := range bundles {
		if seen[b.Key()] {
			dropped = append(dropped, b)
			continue
		}
		seen[b.Key()] = true
		unique = append(unique, b)
	}
	return unique, dropped
}

// Sort orders bundles for deterministic display: by kind (SDKs first), then
// version descending. Bundles with unparseable versions sort after parseable
// ones, ordered by raw string descending, case-insensitive.
func Sort(bundles []Bundle) {
	sort.SliceStable(bundles, func(i, j int) bool {
		return less(bundles[i], bundles[j])
	})
}

// SortEntries applies the same ordering to annotated entries.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i].Bundle, entries[j].Bundle)
	})
}

func less(a, b Bundle) bool {
	if kindRank[a.Kind] != kindRank[b.Kind] {
		return kindRank[a.Kind] < kindRank[b.Kind]
	}
	switch {
	case a.Version != nil && b.Version != nil:
		if c := a.Version.Compare(b.Version); c != 0 {
			return c > 0
		}
	case a.Version != nil:
		return true
	case b.Version != nil:
		return false
	default:
		av, bv := strings.ToLower(a.RawVersion), strings.ToLower(b.RawVersion)
		if av != bv {
			return av > bv
		}
	}
	return a.Arch < b.Arch
}

// ParseVersion parses a .NET version string. Returns nil (not an error) when
// the string is not a valid semantic version; such bundles carry no
// dependency edges and are treated as independently removable.
func ParseVersion(raw string) *semver.Version {
	v, err := semver.StrictNewVersion(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return v
}
