// Package uninstall performs the actual removal of one bundle: launching the
// registered uninstaller on Windows, deleting install directories on macOS.
// It assumes the process already runs with sufficient privilege; a
// permission-denied from the OS surfaces as ErrProcessStart or ErrDeletion.
package uninstall

import (
	"errors"
	"fmt"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

// ErrPlatformUnsupported is returned by New on operating systems with no
// implemented executor.
var ErrPlatformUnsupported = errors.New("uninstall: no executor for this platform")

// Executor removes one bundle from the machine. Remove blocks until the
// removal finishes; there is no timeout and no cancellation. After a
// successful Remove the caller must re-enumerate for a fresh snapshot.
type Executor interface {
	Remove(entry bundle.Entry) error
}

// New returns the executor for the current platform.
func New() (Executor, error) {
	return newPlatformExecutor()
}

// checkRemovable is the defensive re-check every executor runs before
// touching OS state. Callers are expected to have verified CanUninstall
// already; a blocked entry fails fast with the extractor's reason.
func checkRemovable(entry bundle.Entry) error {
	if entry.CanUninstall {
		return nil
	}
	reason := entry.Reason
	if reason == "" {
		reason = fmt.Sprintf("%s is not marked removable", entry.Label())
	}
	return &ErrBlocked{Reason: reason}
}
