//go:build !windows && !darwin

package safety

import "github.com/dotsweep/dotsweep/internal/bundle"

// DetectPins has nothing to detect on platforms without Visual Studio.
func DetectPins(bundles []bundle.Bundle) []Pin {
	return nil
}
