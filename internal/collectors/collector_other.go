//go:build !windows && !darwin

package collectors

func newPlatformCollector() (Collector, error) {
	return nil, ErrPlatformUnsupported
}
