// Copyright © 2025 The Gomon Project.

package process

import (
	"fmt"
)

// Enumerate lists the identifiers of the processes on the host, order unspecified.
// If the process table cannot be read, Enumerate returns an empty list and an error
// wrapping ErrEnumeration.
func Enumerate(src Source) ([]Pid, error) {
	ps, err := src.Pids()
	if err != nil {
		return []Pid{}, fmt.Errorf("%w: %w", ErrEnumeration, err)
	}

	seen := make(map[Pid]struct{}, len(ps))
	pids := make([]Pid, 0, len(ps))
	for _, pid := range ps {
		if pid <= 0 {
			continue
		}
		if _, ok := seen[pid]; ok {
			continue
		}
		seen[pid] = struct{}{}
		pids = append(pids, pid)
	}

	return pids, nil
}
