// Package safety decides which installed bundles can be uninstalled without
// breaking something else on the machine. It is pure: every function is a
// function of one bundle snapshot plus the detected IDE pins, touches no OS
// state, and returns fresh values on every call.
package safety

import (
	"fmt"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

// Pin marks one bundle as non-removable because an installed IDE hard-requires
// that exact version.
type Pin struct {
	IDE string // e.g. "Visual Studio 2022"
	Key string // bundle key (kind|version|arch)
}

// ComputeReasons maps each blocked bundle's key to a human-readable reason.
// Bundles absent from the map are safe to uninstall.
//
// Two rules produce reasons, in priority order:
//
//  1. IDE pins: "required by <IDE>". Pin reasons always win over rule 2.
//  2. SDK requirement: every SDK requires a base runtime of its own
//     major.minor and architecture. Only the last remaining runtime
//     satisfying a requirement is blocked; when two or more copies satisfy
//     it, removing any single one still leaves the SDK working.
//
// Bundles whose version never parsed carry no dependency edges in either
// direction and are therefore independently removable.
func ComputeReasons(bundles []bundle.Bundle, pins []Pin) map[string]string {
	reasons := make(map[string]string)

	present := make(map[string]bool, len(bundles))
	for _, b := range bundles {
		present[b.Key()] = true
	}
	for _, pin := range pins {
		if present[pin.Key] {
			reasons[pin.Key] = "required by " + pin.IDE
		}
	}

	for req, sdk := range requirements(bundles) {
		candidates := satisfying(bundles, req)
		if len(candidates) != 1 {
			// Zero copies: nothing to protect. Two or more: no single
			// removal breaks the SDK.
			continue
		}
		key := candidates[0].Key()
		if _, pinned := reasons[key]; pinned {
			continue
		}
		reasons[key] = fmt.Sprintf("required by .NET SDK %s", sdk.RawVersion)
	}

	return reasons
}

// ComputeUninstallable returns the bundles with no blocking reason, in input
// order.
func ComputeUninstallable(bundles []bundle.Bundle, pins []Pin) []bundle.Bundle {
	reasons := ComputeReasons(bundles, pins)

	var out []bundle.Bundle
	for _, b := range bundles {
		if _, blocked := reasons[b.Key()]; !blocked {
			out = append(out, b)
		}
	}
	return out
}

// Annotate produces the removability-annotated snapshot handed to callers.
func Annotate(bundles []bundle.Bundle, pins []Pin) []bundle.Entry {
	reasons := ComputeReasons(bundles, pins)

	entries := make([]bundle.Entry, 0, len(bundles))
	for _, b := range bundles {
		reason := reasons[b.Key()]
		entries = append(entries, bundle.Entry{
			Bundle:       b,
			CanUninstall: reason == "",
			Reason:       reason,
		})
	}
	return entries
}

// requirement is one "some SDK needs a runtime of this family" edge.
type requirement struct {
	major, minor uint64
	arch         bundle.Arch
}

// requirements collects the runtime families required by the installed SDKs.
// When several SDKs share a family, the highest-versioned SDK names the
// requirement so reason text is deterministic.
func requirements(bundles []bundle.Bundle) map[requirement]bundle.Bundle {
	reqs := make(map[requirement]bundle.Bundle)
	for _, b := range bundles {
		if b.Kind != bundle.KindSDK || b.Version == nil {
			continue
		}
		req := requirement{b.Version.Major(), b.Version.Minor(), b.Arch}
		if prev, ok := reqs[req]; ok && prev.Version.Compare(b.Version) >= 0 {
			continue
		}
		reqs[req] = b
	}
	return reqs
}

// satisfying returns the installed base runtimes that satisfy a requirement:
// same major.minor, same architecture.
func satisfying(bundles []bundle.Bundle, req requirement) []bundle.Bundle {
	var out []bundle.Bundle
	for _, b := range bundles {
		if b.Kind != bundle.KindRuntime || b.Version == nil || b.Arch != req.arch {
			continue
		}
		if b.Version.Major() == req.major && b.Version.Minor() == req.minor {
			out = append(out, b)
		}
	}
	return out
}
