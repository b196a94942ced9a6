// Copyright © 2025 The Gomon Project.

package process

import (
	"fmt"

	psprocess "github.com/shirou/gopsutil/v3/process"
)

// Kill terminates the process. It does not wait for the process to exit.
func Kill(pid Pid) error {
	if pid <= 0 {
		return fmt.Errorf("%w: invalid pid %d", ErrTermination, pid)
	}
	p, err := psprocess.NewProcess(int32(pid))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTermination, err)
	}
	if err := p.Kill(); err != nil {
		return fmt.Errorf("%w: %w", ErrTermination, err)
	}
	return nil
}
