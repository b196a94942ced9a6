// Copyright © 2025 The Gomon Project.

//go:build !windows

package process

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Kill sends SIGKILL to the process. It does not wait for the process to exit.
func Kill(pid Pid) error {
	if pid <= 0 { // kill(2) would signal a process group
		return fmt.Errorf("%w: invalid pid %d", ErrTermination, pid)
	}
	if err := unix.Kill(int(pid), unix.SIGKILL); err != nil {
		return fmt.Errorf("%w: %w", ErrTermination, err)
	}
	return nil
}
