// Copyright © 2025 The Gomon Project.

// Package processtest provides an in-memory process.Source for tests.
package processtest

import (
	"io/fs"
	"sync"

	"github.com/zosmac/goproc/process"
)

type (
	// Process describes one fake process.
	Process struct {
		Accounting  process.Accounting
		ResidentKB  uint64
		CommandLine string

		AccountingErr  error
		MemoryErr      error
		CommandLineErr error
	}

	// Source serves process accounting from a map. The zero value is an empty
	// process table; use Add and Remove to change it between cycles.
	Source struct {
		mu    sync.RWMutex
		procs map[process.Pid]Process

		// PidsErr, if set, is returned by Pids.
		PidsErr error
		// Extra pids are listed by Pids without a process behind them.
		Extra []process.Pid
	}
)

// NewSource returns a Source with the given processes.
func NewSource(procs map[process.Pid]Process) *Source {
	s := &Source{procs: map[process.Pid]Process{}}
	for pid, p := range procs {
		s.procs[pid] = p
	}
	return s
}

// Add inserts or replaces a process.
func (s *Source) Add(pid process.Pid, p Process) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.procs == nil {
		s.procs = map[process.Pid]Process{}
	}
	s.procs[pid] = p
}

// Remove deletes a process, as if it exited.
func (s *Source) Remove(pid process.Pid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.procs, pid)
}

// Pids lists the processes.
func (s *Source) Pids() ([]process.Pid, error) {
	if s.PidsErr != nil {
		return nil, s.PidsErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	pids := make([]process.Pid, 0, len(s.procs)+len(s.Extra))
	for pid := range s.procs {
		pids = append(pids, pid)
	}
	return append(pids, s.Extra...), nil
}

// Accounting returns the process' accounting.
func (s *Source) Accounting(pid process.Pid) (process.Accounting, error) {
	p, err := s.lookup(pid)
	if err != nil {
		return process.Accounting{}, err
	}
	return p.Accounting, p.AccountingErr
}

// Memory returns the process' resident kilobytes.
func (s *Source) Memory(pid process.Pid) (uint64, error) {
	p, err := s.lookup(pid)
	if err != nil {
		return 0, err
	}
	return p.ResidentKB, p.MemoryErr
}

// CommandLine returns the process' command line.
func (s *Source) CommandLine(pid process.Pid) (string, error) {
	p, err := s.lookup(pid)
	if err != nil {
		return "", err
	}
	return p.CommandLine, p.CommandLineErr
}

// lookup finds a process, reporting fs.ErrNotExist as /proc would.
func (s *Source) lookup(pid process.Pid) (Process, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.procs[pid]
	if !ok {
		return Process{}, &fs.PathError{Op: "open", Path: "/proc/" + pid.String(), Err: fs.ErrNotExist}
	}
	return p, nil
}

// Seconds builds the accounting for a process that consumed the CPU seconds, at 100 ticks per second.
func Seconds(cpu float64) process.Accounting {
	return process.Accounting{User: uint64(cpu * 100), Hz: 100}
}
