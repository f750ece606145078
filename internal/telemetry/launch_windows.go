//go:build windows

package telemetry

import "syscall"

const detachedProcess = 0x00000008

// detachedSysProcAttr detaches the reporter from the parent's console and
// process group so the parent can exit without waiting.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP | detachedProcess,
	}
}
