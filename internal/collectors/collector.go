package collectors

import (
	"errors"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

// ErrPlatformUnsupported is returned by New on operating systems with no
// implemented collector (anything other than Windows and macOS).
var ErrPlatformUnsupported = errors.New("collectors: no bundle collector for this platform")

// Collector enumerates the .NET bundles installed on the local machine.
// An empty machine yields an empty slice, not an error. Collectors never
// compute removability; that is the safety package's job.
type Collector interface {
	Enumerate() ([]bundle.Bundle, error)
}

// New returns the collector for the current platform, or
// ErrPlatformUnsupported when there is none.
func New() (Collector, error) {
	return newPlatformCollector()
}
