package safety

import (
	"github.com/Masterminds/semver/v3"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

// vsRelease maps a Visual Studio major version to the oldest SDK line it can
// work with. An installed VS pins the newest installed SDK at or above that
// floor; without it the IDE loses its build toolchain.
type vsRelease struct {
	major  uint64
	name   string
	minSDK *semver.Version
}

var vsReleases = []vsRelease{
	{15, "Visual Studio 2017", semver.MustParse("2.1.0")},
	{16, "Visual Studio 2019", semver.MustParse("3.1.0")},
	{17, "Visual Studio 2022", semver.MustParse("6.0.0")},
	{18, "Visual Studio 2026", semver.MustParse("8.0.0")},
}

func releaseForMajor(major uint64) (vsRelease, bool) {
	for _, r := range vsReleases {
		if r.major == major {
			return r, true
		}
	}
	return vsRelease{}, false
}

// pinNewestSDK returns a pin for the newest installed SDK whose version is at
// least min, or nil when no installed SDK satisfies the IDE.
func pinNewestSDK(bundles []bundle.Bundle, min *semver.Version, ide string) []Pin {
	var newest *bundle.Bundle
	for i := range bundles {
		b := &bundles[i]
		if b.Kind != bundle.KindSDK || b.Version == nil {
			continue
		}
		if b.Version.Compare(min) < 0 {
			continue
		}
		if newest == nil || b.Version.Compare(newest.Version) > 0 {
			newest = b
		}
	}
	if newest == nil {
		return nil
	}
	return []Pin{{IDE: ide, Key: newest.Key()}}
}
