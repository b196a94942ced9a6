// Copyright © 2025 The Gomon Project.

package process

import (
	"errors"
	"io/fs"
)

type (
	// Accounting reports the cumulative CPU clock ticks a process has consumed.
	Accounting struct {
		User   uint64
		System uint64
		Hz     uint64 // ticks per second
	}

	// Source reads process accounting from the operating system.
	Source interface {
		// Pids lists the processes the operating system knows.
		Pids() ([]Pid, error)
		// Accounting reads the process' CPU tick counters.
		Accounting(Pid) (Accounting, error)
		// Memory reads the process' resident set size in kilobytes.
		Memory(Pid) (uint64, error)
		// CommandLine reads the process' invocation.
		CommandLine(Pid) (string, error)
	}
)

// Seconds converts the user and system ticks to CPU seconds.
func (a Accounting) Seconds() float64 {
	if a.Hz == 0 {
		return 0
	}
	return float64(a.User+a.System) / float64(a.Hz)
}

// vanished reports whether a read failed because the process no longer exists.
func vanished(err error) bool {
	return err != nil && (errors.Is(err, fs.ErrNotExist) || errors.Is(err, errVanished))
}
