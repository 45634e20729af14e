package supervisor

import "syscall"

// detachAttr puts the actor in its own process group so it survives
// this invocation and never receives the controlling terminal's
// signals.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}
