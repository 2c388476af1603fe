// Package osutil holds platform names, permissions and exit codes.
package osutil

const Windows = "windows"

const (
	DirPermission  = 0o755
	FilePermission = 0o600
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

// Code returns the numeric exit code.
func (e exitCode) Code() int {
	return int(e)
}
