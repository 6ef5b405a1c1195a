//go:build !windows && !darwin

package uninstall

func newPlatformExecutor() (Executor, error) {
	return nil, ErrPlatformUnsupported
}
