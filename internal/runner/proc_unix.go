//go:build !windows

package runner

import (
	"os/exec"
	"syscall"
)

// setProcAttr places the child in its own process group so a timeout kill
// also reaps grandchildren (a bare SIGKILL to the parent leaves them running).
func setProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func killProcess(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
		_ = cmd.Process.Kill()
	}
}
