//go:build !windows

package telemetry

import "syscall"

// detachedSysProcAttr detaches the reporter from the parent's session so
// it survives the parent exiting and never holds the terminal.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
