//go:build darwin

package uninstall

import (
	"github.com/spf13/afero"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

type darwinExecutor struct {
	fs afero.Fs
}

func newPlatformExecutor() (Executor, error) {
	return &darwinExecutor{fs: afero.NewOsFs()}, nil
}

// Remove deletes the bundle's install directories. Running without root
// typically surfaces as a permission ErrDeletion on the first directory.
func (e *darwinExecutor) Remove(entry bundle.Entry) error {
	return deleteDirs(e.fs, entry)
}
