package uninstall

import "fmt"

// ErrBlocked indicates an attempted uninstall of a bundle the safety
// extractor marked non-removable. Surfaced verbatim to the user.
type ErrBlocked struct {
	Reason string
}

func (e *ErrBlocked) Error() string {
	return fmt.Sprintf("bundle cannot be uninstalled: %s", e.Reason)
}

// ErrProcessStart indicates the uninstaller executable could not be launched.
type ErrProcessStart struct {
	Path string
	Err  error
}

func (e *ErrProcessStart) Error() string {
	return fmt.Sprintf("cannot start uninstaller %q: %v", e.Path, e.Err)
}

func (e *ErrProcessStart) Unwrap() error { return e.Err }

// ErrUninstallerExit indicates the uninstaller ran but reported failure.
type ErrUninstallerExit struct {
	Path string
	Code int
}

func (e *ErrUninstallerExit) Error() string {
	return fmt.Sprintf("uninstaller %q exited with code %d", e.Path, e.Code)
}

// ErrDeletion indicates one directory of a macOS bundle could not be
// removed. Directories already deleted before the failure stay deleted.
type ErrDeletion struct {
	Path string
	Err  error
}

func (e *ErrDeletion) Error() string {
	return fmt.Sprintf("cannot delete %q: %v", e.Path, e.Err)
}

func (e *ErrDeletion) Unwrap() error { return e.Err }
