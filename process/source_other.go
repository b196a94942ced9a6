// Copyright © 2025 The Gomon Project.

//go:build !linux

package process

import (
	psprocess "github.com/shirou/gopsutil/v3/process"
)

const (
	// microHz expresses gopsutil's CPU seconds as microsecond ticks.
	microHz = 1_000_000
)

var (
	// errVanished is gopsutil's report for a pid that does not exist.
	errVanished = psprocess.ErrorProcessNotRunning
)

type (
	// psSource reads process accounting through gopsutil.
	psSource struct{}
)

// NewSource returns the Source for the host's process table.
func NewSource() (Source, error) {
	return psSource{}, nil
}

// Pids lists the host's processes.
func (psSource) Pids() ([]Pid, error) {
	ps, err := psprocess.Pids()
	if err != nil {
		return nil, err
	}
	pids := make([]Pid, len(ps))
	for i, pid := range ps {
		pids[i] = Pid(pid)
	}
	return pids, nil
}

// Accounting reads the user and system CPU times.
func (psSource) Accounting(pid Pid) (Accounting, error) {
	p, err := psprocess.NewProcess(int32(pid))
	if err != nil {
		return Accounting{}, err
	}
	t, err := p.Times()
	if err != nil {
		return Accounting{}, err
	}
	return Accounting{
		User:   uint64(t.User * microHz),
		System: uint64(t.System * microHz),
		Hz:     microHz,
	}, nil
}

// Memory reads the resident set size.
func (psSource) Memory(pid Pid) (uint64, error) {
	p, err := psprocess.NewProcess(int32(pid))
	if err != nil {
		return 0, err
	}
	mi, err := p.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return mi.RSS / 1024, nil
}

// CommandLine reads the process' command line.
func (psSource) CommandLine(pid Pid) (string, error) {
	p, err := psprocess.NewProcess(int32(pid))
	if err != nil {
		return "", err
	}
	return p.Cmdline()
}
