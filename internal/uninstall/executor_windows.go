//go:build windows

package uninstall

import (
	"errors"
	"os/exec"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

type windowsExecutor struct{}

func newPlatformExecutor() (Executor, error) {
	return &windowsExecutor{}, nil
}

// Remove launches the bundle's registered uninstaller and waits for it.
// Elevation is the caller's concern; running unelevated typically surfaces
// as an access-denied ErrProcessStart from CreateProcess.
func (e *windowsExecutor) Remove(entry bundle.Entry) error {
	return runUninstaller(runProcess, entry)
}

func runProcess(exe string, args []string) (int, error) {
	cmd := exec.Command(exe, args...)
	if err := cmd.Start(); err != nil {
		return 0, err
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 0, err
	}
	return 0, nil
}
