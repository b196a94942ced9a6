// Copyright © 2025 The Gomon Project.

package process_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zosmac/goproc/process"
	"github.com/zosmac/goproc/process/processtest"
)

func TestSample(t *testing.T) {
	permission := errors.New("permission denied")

	src := processtest.NewSource(map[process.Pid]processtest.Process{
		42: {
			Accounting:  process.Accounting{User: 150, System: 50, Hz: 100},
			ResidentKB:  2048,
			CommandLine: "/usr/bin/worker --fast",
		},
		43: {
			Accounting: processtest.Seconds(1.5),
			MemoryErr:  permission,
		},
		44: {
			Accounting:     processtest.Seconds(3),
			ResidentKB:     512,
			CommandLineErr: permission,
		},
	})

	t.Run("complete", func(t *testing.T) {
		s := process.Sample(src, 42)
		require.NoError(t, s.Err)
		assert.Equal(t, process.Pid(42), s.Pid)
		assert.Equal(t, 2.0, s.CPUSeconds)
		assert.Equal(t, 2.0, s.ResidentMB)
		assert.Equal(t, "/usr/bin/worker --fast", s.CommandLine)
	})

	t.Run("not found", func(t *testing.T) {
		var s process.Snapshot
		require.NotPanics(t, func() { s = process.Sample(src, 99) })
		require.ErrorIs(t, s.Err, process.ErrNotFound)
		assert.Equal(t, process.Snapshot{Pid: 99, Err: s.Err}, s, "metrics must be zero")
	})

	t.Run("partial", func(t *testing.T) {
		s := process.Sample(src, 43)
		require.ErrorIs(t, s.Err, process.ErrPartial)
		assert.ErrorIs(t, s.Err, permission)
		assert.Equal(t, 1.5, s.CPUSeconds, "values that were read are kept")
		assert.Zero(t, s.ResidentMB)
	})

	t.Run("unreadable command line", func(t *testing.T) {
		s := process.Sample(src, 44)
		require.NoError(t, s.Err)
		assert.Empty(t, s.CommandLine)
		assert.Equal(t, 0.5, s.ResidentMB)
	})
}

func TestSampleExitsMidRead(t *testing.T) {
	gone := &processtest.Source{}
	gone.Add(7, processtest.Process{
		Accounting: processtest.Seconds(8),
		ResidentKB: 1024,
		MemoryErr:  errors.New("read /proc/7/status: input/output error"),
	})
	gone.Add(8, processtest.Process{
		Accounting: processtest.Seconds(8),
		MemoryErr:  fmt.Errorf("open /proc/8/status: %w", fs.ErrNotExist),
	})

	s := process.Sample(gone, 8)
	require.ErrorIs(t, s.Err, process.ErrNotFound)
	assert.Zero(t, s.CPUSeconds, "partial values of a vanished process are dropped")

	s = process.Sample(gone, 7)
	assert.ErrorIs(t, s.Err, process.ErrPartial)
}

func TestSampleAll(t *testing.T) {
	procs := map[process.Pid]processtest.Process{}
	var all []process.Pid
	for pid := process.Pid(1); pid <= 200; pid++ {
		procs[pid] = processtest.Process{Accounting: processtest.Seconds(float64(pid))}
		all = append(all, pid)
	}
	all = append(all, 1000) // exits before sampling
	src := processtest.NewSource(procs)

	for _, workers := range []int{0, 1, 8, 500} {
		batch := process.SampleAll(src, all, workers)
		require.Len(t, batch, len(all))
		for i, s := range batch {
			require.Equal(t, all[i], s.Pid, "snapshot %d out of place with %d workers", i, workers)
		}
		assert.ErrorIs(t, batch[len(batch)-1].Err, process.ErrNotFound)
		assert.Equal(t, 200.0, batch[199].CPUSeconds)
	}
}
