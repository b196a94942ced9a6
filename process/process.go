// Copyright © 2025 The Gomon Project.

package process

import (
	"errors"
	"strconv"
)

type (
	// Pid is the identifier for a process.
	Pid int

	// Snapshot records one process' state at one sampling instant.
	Snapshot struct {
		Pid         Pid
		CommandLine string
		CPUSeconds  float64 // cumulative user and system
		ResidentMB  float64
		Err         error // wraps ErrNotFound or ErrPartial
	}
)

var (
	// ErrEnumeration reports that the process table could not be read.
	ErrEnumeration = errors.New("process table unavailable")

	// ErrNotFound reports that a process exited before it could be sampled.
	ErrNotFound = errors.New("process not found")

	// ErrPartial reports that some of a process' accounting could not be read.
	ErrPartial = errors.New("process partially sampled")

	// ErrTermination reports that a termination signal was not delivered.
	ErrTermination = errors.New("termination failed")
)

// String formats a pid as a string to comply with fmt.Stringer interface.
func (pid Pid) String() string {
	return strconv.Itoa(int(pid))
}
