package collectors

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

func makeLayout(t *testing.T, dirs ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, d := range dirs {
		if err := fsys.MkdirAll(d, 0755); err != nil {
			t.Fatalf("MkdirAll(%s): %v", d, err)
		}
	}
	return fsys
}

func TestScanDotnetRootClassifiesLayout(t *testing.T) {
	root := "/usr/local/share/dotnet"
	fsys := makeLayout(t,
		filepath.Join(root, "sdk", "8.0.100"),
		filepath.Join(root, "sdk", "6.0.400"),
		filepath.Join(root, "shared", "Microsoft.NETCore.App", "8.0.0"),
		filepath.Join(root, "shared", "Microsoft.AspNetCore.App", "8.0.0"),
		filepath.Join(root, "host", "fxr", "8.0.0"),
	)

	bundles, err := scanDotnetRoot(fsys, root, bundle.ArchArm64)
	if err != nil {
		t.Fatalf("scanDotnetRoot: %v", err)
	}
	if len(bundles) != 4 {
		t.Fatalf("expected 4 bundles, got %d: %+v", len(bundles), bundles)
	}

	byKey := make(map[string]bundle.Bundle)
	for _, b := range bundles {
		byKey[b.Key()] = b
	}

	sdk, ok := byKey["sdk|8.0.100|arm64"]
	if !ok {
		t.Fatal("SDK 8.0.100 not found")
	}
	if sdk.UninstallCommand != filepath.Join(root, "sdk", "8.0.100") {
		t.Errorf("sdk uninstall command = %q", sdk.UninstallCommand)
	}

	rt, ok := byKey["runtime|8.0.0|arm64"]
	if !ok {
		t.Fatal("runtime 8.0.0 not found")
	}
	wantCmd := filepath.Join(root, "shared", "Microsoft.NETCore.App", "8.0.0") +
		" " + filepath.Join(root, "host", "fxr", "8.0.0")
	if rt.UninstallCommand != wantCmd {
		t.Errorf("runtime uninstall command = %q, want %q", rt.UninstallCommand, wantCmd)
	}

	if _, ok := byKey["aspnet-runtime|8.0.0|arm64"]; !ok {
		t.Error("ASP.NET Core runtime 8.0.0 not found")
	}
}

func TestScanDotnetRootMissingRoot(t *testing.T) {
	fsys := afero.NewMemMapFs()

	bundles, err := scanDotnetRoot(fsys, "/usr/local/share/dotnet", bundle.ArchX64)
	if err != nil {
		t.Fatalf("missing root should not be an error, got %v", err)
	}
	if len(bundles) != 0 {
		t.Errorf("expected 0 bundles, got %d", len(bundles))
	}
}

func TestScanDotnetRootRuntimeWithoutHostFxr(t *testing.T) {
	root := "/dotnet"
	fsys := makeLayout(t, filepath.Join(root, "shared", "Microsoft.NETCore.App", "7.0.0"))

	bundles, err := scanDotnetRoot(fsys, root, bundle.ArchX64)
	if err != nil {
		t.Fatalf("scanDotnetRoot: %v", err)
	}
	if len(bundles) != 1 {
		t.Fatalf("expected 1 bundle, got %d", len(bundles))
	}
	if bundles[0].UninstallCommand != filepath.Join(root, "shared", "Microsoft.NETCore.App", "7.0.0") {
		t.Errorf("uninstall command = %q", bundles[0].UninstallCommand)
	}
}

func TestScanDotnetRootIgnoresStrayEntries(t *testing.T) {
	root := "/dotnet"
	fsys := makeLayout(t,
		filepath.Join(root, "sdk", "8.0.100"),
		filepath.Join(root, "sdk", ".DS_Store_dir"),
	)
	if err := afero.WriteFile(fsys, filepath.Join(root, "sdk", "NuGetFallbackFolder.marker"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	bundles, err := scanDotnetRoot(fsys, root, bundle.ArchX64)
	if err != nil {
		t.Fatalf("scanDotnetRoot: %v", err)
	}
	if len(bundles) != 1 || bundles[0].RawVersion != "8.0.100" {
		t.Errorf("expected only SDK 8.0.100, got %+v", bundles)
	}
}
