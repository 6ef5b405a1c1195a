//go:build !windows

package privilege

import "os"

// IsRunningAsRoot returns true when running with UID 0. Deleting bundle
// directories under /usr/local/share/dotnet requires it.
func IsRunningAsRoot() bool {
	return os.Getuid() == 0
}
