//go:build windows

package privilege

import "golang.org/x/sys/windows"

// IsRunningAsRoot returns true when the process token is elevated
// (Administrator). Installer-based uninstalls fail without it.
func IsRunningAsRoot() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
