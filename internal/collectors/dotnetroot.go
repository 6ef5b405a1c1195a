package collectors

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

// Shared-framework directory names under <root>/shared.
const (
	frameworkNetCore = "Microsoft.NETCore.App"
	frameworkAspNet  = "Microsoft.AspNetCore.App"
)

// scanDotnetRoot walks one dotnet install root and returns the bundles found
// in it. A missing root means nothing is installed there: empty result, no
// error. The filesystem is abstracted so tests run against an in-memory one.
//
// Layout (as laid down by the official installer packages):
//
//	<root>/sdk/<version>                         SDK
//	<root>/shared/Microsoft.NETCore.App/<v>      runtime
//	<root>/shared/Microsoft.AspNetCore.App/<v>   ASP.NET Core runtime
//	<root>/host/fxr/<v>                          host resolver, removed with
//	                                             the matching runtime
func scanDotnetRoot(fsys afero.Fs, root string, arch bundle.Arch) ([]bundle.Bundle, error) {
	exists, err := afero.DirExists(fsys, root)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	var bundles []bundle.Bundle

	for _, version := range versionDirs(fsys, filepath.Join(root, "sdk")) {
		dir := filepath.Join(root, "sdk", version)
		bundles = append(bundles, bundle.Bundle{
			Kind:             bundle.KindSDK,
			Version:          bundle.ParseVersion(version),
			RawVersion:       version,
			Arch:             arch,
			DisplayName:      ".NET SDK " + version,
			InstallLocation:  dir,
			UninstallCommand: dir,
		})
	}

	for _, version := range versionDirs(fsys, filepath.Join(root, "shared", frameworkNetCore)) {
		dir := filepath.Join(root, "shared", frameworkNetCore, version)
		dirs := []string{dir}
		// The host resolver ships with the runtime of the same version.
		fxr := filepath.Join(root, "host", "fxr", version)
		if ok, _ := afero.DirExists(fsys, fxr); ok {
			dirs = append(dirs, fxr)
		}
		bundles = append(bundles, bundle.Bundle{
			Kind:             bundle.KindRuntime,
			Version:          bundle.ParseVersion(version),
			RawVersion:       version,
			Arch:             arch,
			DisplayName:      ".NET Runtime " + version,
			InstallLocation:  dir,
			UninstallCommand: strings.Join(dirs, " "),
		})
	}

	for _, version := range versionDirs(fsys, filepath.Join(root, "shared", frameworkAspNet)) {
		dir := filepath.Join(root, "shared", frameworkAspNet, version)
		bundles = append(bundles, bundle.Bundle{
			Kind:             bundle.KindAspNetRuntime,
			Version:          bundle.ParseVersion(version),
			RawVersion:       version,
			Arch:             arch,
			DisplayName:      "ASP.NET Core Runtime " + version,
			InstallLocation:  dir,
			UninstallCommand: dir,
		})
	}

	return bundles, nil
}

// versionDirs lists the version-named subdirectories of dir. Stray files and
// dotfiles (.DS_Store and friends) are ignored. A missing dir yields nil.
func versionDirs(fsys afero.Fs, dir string) []string {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}

	var versions []string
	for _, info := range infos {
		if !info.IsDir() || strings.HasPrefix(info.Name(), ".") {
			continue
		}
		versions = append(versions, info.Name())
	}
	return versions
}
