package uninstall

import "github.com/dotsweep/dotsweep/internal/bundle"

// runFunc launches an uninstaller and waits for it, returning its exit code.
// Abstracted so the launch/wait/exit-code flow is testable off-Windows.
type runFunc func(exe string, args []string) (exitCode int, err error)

// runUninstaller drives one installer-based uninstall: defensive blocked
// check, quote-aware command split, synchronous out-of-process run. Nothing
// is launched for a blocked entry.
func runUninstaller(run runFunc, entry bundle.Entry) error {
	if err := checkRemovable(entry); err != nil {
		return err
	}

	exe, args, err := splitCommand(entry.UninstallCommand)
	if err != nil {
		return &ErrProcessStart{Path: entry.UninstallCommand, Err: err}
	}

	code, err := run(exe, args)
	if err != nil {
		return &ErrProcessStart{Path: exe, Err: err}
	}
	if code != 0 {
		return &ErrUninstallerExit{Path: exe, Code: code}
	}
	return nil
}
