package safety

import (
	"strings"
	"testing"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

func mk(kind bundle.Kind, version string, arch bundle.Arch) bundle.Bundle {
	return bundle.Bundle{
		Kind:       kind,
		Version:    bundle.ParseVersion(version),
		RawVersion: version,
		Arch:       arch,
	}
}

func keys(bundles []bundle.Bundle) map[string]bool {
	out := make(map[string]bool, len(bundles))
	for _, b := range bundles {
		out[b.Key()] = true
	}
	return out
}

func TestLastRuntimeCopyIsBlocked(t *testing.T) {
	sdk := mk(bundle.KindSDK, "8.0.100", bundle.ArchX64)
	rt := mk(bundle.KindRuntime, "8.0.0", bundle.ArchX64)

	reasons := ComputeReasons([]bundle.Bundle{sdk, rt}, nil)

	reason, blocked := reasons[rt.Key()]
	if !blocked {
		t.Fatal("sole runtime satisfying the SDK must be blocked")
	}
	if !strings.Contains(reason, "required") {
		t.Errorf("reason %q does not mention 'required'", reason)
	}
	if !strings.Contains(reason, "8.0.100") {
		t.Errorf("reason %q does not name the requiring SDK", reason)
	}
	if _, sdkBlocked := reasons[sdk.Key()]; sdkBlocked {
		t.Errorf("SDK should not be blocked, got %q", reasons[sdk.Key()])
	}
}

func TestSecondRuntimeCopyUnblocks(t *testing.T) {
	sdk := mk(bundle.KindSDK, "8.0.100", bundle.ArchX64)
	rt1 := mk(bundle.KindRuntime, "8.0.0", bundle.ArchX64)
	rt2 := mk(bundle.KindRuntime, "8.0.11", bundle.ArchX64)

	reasons := ComputeReasons([]bundle.Bundle{sdk, rt1, rt2}, nil)

	if len(reasons) != 0 {
		t.Errorf("with two satisfying runtimes nothing is blocked, got %v", reasons)
	}
}

func TestUnrelatedRuntimeStaysRemovable(t *testing.T) {
	set := []bundle.Bundle{
		mk(bundle.KindSDK, "8.0.100", bundle.ArchX64),
		mk(bundle.KindRuntime, "8.0.0", bundle.ArchX64),
		mk(bundle.KindRuntime, "7.0.0", bundle.ArchX64),
	}

	reasons := ComputeReasons(set, nil)

	if _, blocked := reasons[set[2].Key()]; blocked {
		t.Errorf("runtime 7.0.0 is not required by any SDK, got %q", reasons[set[2].Key()])
	}
	if reason, blocked := reasons[set[1].Key()]; !blocked || !strings.Contains(reason, ".NET SDK 8.0.100") {
		t.Errorf("runtime 8.0.0 should be blocked by SDK 8.0.100, got %q", reason)
	}

	removable := keys(ComputeUninstallable(set, nil))
	if !removable[set[0].Key()] || !removable[set[2].Key()] || removable[set[1].Key()] {
		t.Errorf("uninstallable set wrong: %v", removable)
	}
}

func TestRemovingSDKFreesRuntime(t *testing.T) {
	sdk := mk(bundle.KindSDK, "8.0.100", bundle.ArchX64)
	rt := mk(bundle.KindRuntime, "8.0.0", bundle.ArchX64)

	before := keys(ComputeUninstallable([]bundle.Bundle{sdk, rt}, nil))
	if before[rt.Key()] {
		t.Fatal("runtime should be blocked while the SDK is installed")
	}

	// Simulate the SDK having been uninstalled.
	after := keys(ComputeUninstallable([]bundle.Bundle{rt}, nil))
	if !after[rt.Key()] {
		t.Error("runtime should become uninstallable once the SDK is gone")
	}
}

func TestArchitecturesDoNotSatisfyEachOther(t *testing.T) {
	sdk := mk(bundle.KindSDK, "8.0.100", bundle.ArchX64)
	rtX64 := mk(bundle.KindRuntime, "8.0.0", bundle.ArchX64)
	rtArm := mk(bundle.KindRuntime, "8.0.0", bundle.ArchArm64)

	reasons := ComputeReasons([]bundle.Bundle{sdk, rtX64, rtArm}, nil)

	if _, blocked := reasons[rtX64.Key()]; !blocked {
		t.Error("the arm64 copy must not satisfy an x64 SDK's requirement")
	}
	if _, blocked := reasons[rtArm.Key()]; blocked {
		t.Error("the arm64 runtime is required by nothing")
	}
}

func TestAspNetRuntimeNotRequiredBySDK(t *testing.T) {
	set := []bundle.Bundle{
		mk(bundle.KindSDK, "8.0.100", bundle.ArchX64),
		mk(bundle.KindAspNetRuntime, "8.0.0", bundle.ArchX64),
	}

	reasons := ComputeReasons(set, nil)
	if _, blocked := reasons[set[1].Key()]; blocked {
		t.Error("only the base runtime kind satisfies SDK requirements")
	}
}

func TestHighestSDKNamesTheReason(t *testing.T) {
	set := []bundle.Bundle{
		mk(bundle.KindSDK, "8.0.100", bundle.ArchX64),
		mk(bundle.KindSDK, "8.0.204", bundle.ArchX64),
		mk(bundle.KindRuntime, "8.0.0", bundle.ArchX64),
	}

	reasons := ComputeReasons(set, nil)
	if reason := reasons[set[2].Key()]; !strings.Contains(reason, "8.0.204") {
		t.Errorf("reason should name the highest requiring SDK, got %q", reason)
	}
}

func TestUnparseableVersionIsIndependentlyRemovable(t *testing.T) {
	odd := bundle.Bundle{Kind: bundle.KindRuntime, RawVersion: "mystery", Arch: bundle.ArchX64}
	set := []bundle.Bundle{
		mk(bundle.KindSDK, "8.0.100", bundle.ArchX64),
		odd,
	}

	reasons := ComputeReasons(set, nil)
	if _, blocked := reasons[odd.Key()]; blocked {
		t.Error("bundle with unparseable version carries no edges and stays removable")
	}
}

func TestPinBlocksExactBundle(t *testing.T) {
	sdk := mk(bundle.KindSDK, "8.0.100", bundle.ArchX64)
	pins := []Pin{{IDE: "Visual Studio 2022", Key: sdk.Key()}}

	reasons := ComputeReasons([]bundle.Bundle{sdk}, pins)

	if reason := reasons[sdk.Key()]; reason != "required by Visual Studio 2022" {
		t.Errorf("pin reason = %q", reason)
	}
}

func TestPinForAbsentBundleIgnored(t *testing.T) {
	sdk := mk(bundle.KindSDK, "8.0.100", bundle.ArchX64)
	pins := []Pin{{IDE: "Visual Studio 2022", Key: "sdk|9.9.999|x64"}}

	if reasons := ComputeReasons([]bundle.Bundle{sdk}, pins); len(reasons) != 0 {
		t.Errorf("pin for a bundle not in the snapshot must be ignored, got %v", reasons)
	}
}

func TestPinReasonWinsOverSDKReason(t *testing.T) {
	sdk := mk(bundle.KindSDK, "8.0.100", bundle.ArchX64)
	rt := mk(bundle.KindRuntime, "8.0.0", bundle.ArchX64)
	pins := []Pin{{IDE: "Visual Studio 2022", Key: rt.Key()}}

	reasons := ComputeReasons([]bundle.Bundle{sdk, rt}, pins)

	if reason := reasons[rt.Key()]; reason != "required by Visual Studio 2022" {
		t.Errorf("IDE pin must take precedence, got %q", reason)
	}
}

func TestPinsOnlyShrinkUninstallableSet(t *testing.T) {
	set := []bundle.Bundle{
		mk(bundle.KindSDK, "8.0.100", bundle.ArchX64),
		mk(bundle.KindSDK, "6.0.400", bundle.ArchX64),
		mk(bundle.KindRuntime, "8.0.0", bundle.ArchX64),
		mk(bundle.KindRuntime, "6.0.25", bundle.ArchX64),
		mk(bundle.KindDesktopRuntime, "8.0.0", bundle.ArchX64),
	}
	pins := []Pin{{IDE: "Visual Studio 2022", Key: set[0].Key()}}

	withPins := keys(ComputeUninstallable(set, pins))
	withoutPins := keys(ComputeUninstallable(set, nil))

	for key := range withPins {
		if !withoutPins[key] {
			t.Errorf("enabling pins made %s uninstallable; pins may only shrink the set", key)
		}
	}
	if withPins[set[0].Key()] {
		t.Error("the pinned SDK must not be uninstallable")
	}
}

func TestAnnotateMatchesReasons(t *testing.T) {
	set := []bundle.Bundle{
		mk(bundle.KindSDK, "8.0.100", bundle.ArchX64),
		mk(bundle.KindRuntime, "8.0.0", bundle.ArchX64),
	}

	entries := Annotate(set, nil)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		switch e.Kind {
		case bundle.KindSDK:
			if !e.CanUninstall || e.Reason != "" {
				t.Errorf("SDK entry annotated wrong: %+v", e)
			}
		case bundle.KindRuntime:
			if e.CanUninstall || e.Reason == "" {
				t.Errorf("runtime entry annotated wrong: %+v", e)
			}
		}
	}
}

func TestPinNewestSDKRespectsFloor(t *testing.T) {
	set := []bundle.Bundle{
		mk(bundle.KindSDK, "2.1.818", bundle.ArchX64),
		mk(bundle.KindSDK, "8.0.100", bundle.ArchX64),
		mk(bundle.KindSDK, "6.0.400", bundle.ArchX64),
	}

	release, ok := releaseForMajor(17)
	if !ok {
		t.Fatal("Visual Studio 2022 missing from release table")
	}
	pins := pinNewestSDK(set, release.minSDK, release.name)
	if len(pins) != 1 {
		t.Fatalf("expected 1 pin, got %d", len(pins))
	}
	if pins[0].Key != set[1].Key() {
		t.Errorf("pinned %s, want the newest SDK %s", pins[0].Key, set[1].Key())
	}
	if pins[0].IDE != "Visual Studio 2022" {
		t.Errorf("pin IDE = %q", pins[0].IDE)
	}
}

func TestPinNewestSDKNoEligibleSDK(t *testing.T) {
	set := []bundle.Bundle{mk(bundle.KindSDK, "2.1.818", bundle.ArchX64)}

	release, _ := releaseForMajor(17)
	if pins := pinNewestSDK(set, release.minSDK, release.name); pins != nil {
		t.Errorf("no SDK satisfies the floor, expected no pins, got %v", pins)
	}
}
