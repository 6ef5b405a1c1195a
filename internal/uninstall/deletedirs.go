package uninstall

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/dotsweep/dotsweep/internal/bundle"
)

// deleteDirs drives one directory-based uninstall. The entry's command is a
// space-separated list of directories, deleted recursively in listed order.
// A directory that no longer exists counts as already removed. The first
// failing deletion aborts the pass; prior deletions are not rolled back
// (best-effort, same as every real-world uninstaller).
func deleteDirs(fsys afero.Fs, entry bundle.Entry) error {
	if err := checkRemovable(entry); err != nil {
		return err
	}

	paths := strings.Fields(entry.UninstallCommand)
	if len(paths) == 0 {
		return fmt.Errorf("bundle %s has no uninstall directories", entry.Label())
	}

	for _, path := range paths {
		if _, err := fsys.Stat(path); os.IsNotExist(err) {
			continue
		}
		if err := fsys.RemoveAll(path); err != nil {
			return &ErrDeletion{Path: path, Err: err}
		}
	}
	return nil
}
