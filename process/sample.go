// Copyright © 2025 The Gomon Project.

package process

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Sample captures a snapshot of a process. Sample does not fail: a process that exits
// before or while it is read yields a snapshot with zeroed metrics whose Err wraps
// ErrNotFound, and any other failure to read CPU or memory yields a snapshot whose
// Err wraps ErrPartial.
func Sample(src Source, pid Pid) Snapshot {
	s := Snapshot{Pid: pid}
	var errs []error

	acct, err := src.Accounting(pid)
	switch {
	case vanished(err):
		return notFound(pid, err)
	case err != nil:
		errs = append(errs, fmt.Errorf("accounting: %w", err))
	default:
		s.CPUSeconds = acct.Seconds()
	}

	kb, err := src.Memory(pid)
	switch {
	case vanished(err):
		return notFound(pid, err)
	case err != nil:
		errs = append(errs, fmt.Errorf("memory: %w", err))
	default:
		s.ResidentMB = float64(kb) / 1024
	}

	// an unreadable command line is reported as empty
	cl, err := src.CommandLine(pid)
	if vanished(err) {
		return notFound(pid, err)
	}
	s.CommandLine = cl

	if len(errs) > 0 {
		s.Err = fmt.Errorf("%w: %w", ErrPartial, errors.Join(errs...))
	}

	return s
}

// notFound returns the snapshot of a process that is gone.
func notFound(pid Pid, err error) Snapshot {
	return Snapshot{
		Pid: pid,
		Err: fmt.Errorf("%w: %w", ErrNotFound, err),
	}
}

// SampleAll samples each pid using up to workers concurrent readers. The snapshot for
// pids[i] is returned at index i regardless of the order in which samples complete.
func SampleAll(src Source, pids []Pid, workers int) []Snapshot {
	batch := make([]Snapshot, len(pids))
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, pid := range pids {
		g.Go(func() error {
			batch[i] = Sample(src, pid)
			return nil
		})
	}
	g.Wait()

	return batch
}
