// Copyright © 2025 The Gomon Project.

package main

import (
	"runtime"
	"strings"

	"github.com/zosmac/gocore"
	"github.com/zosmac/goproc/process"
)

var (
	// flags defines the command line flags.
	flags = struct {
		top     uint
		metric  process.Metric
		workers int
	}{
		metric:  process.MetricCPU,
		workers: runtime.NumCPU(),
	}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.CommandDescription = "Interactive monitor of the processes on this host. " +
		"Each cycle samples every process' CPU time and resident memory, ranks them, " +
		"and waits for a command to refresh, kill a process, or quit."

	gocore.Flags.Var(
		&flags.top,
		"top",
		"[-top <count>]",
		"The `count` of processes to display, 0 for all",
	)
	gocore.Flags.Var(
		&flags.metric,
		"sort",
		"[-sort "+strings.Join(process.Metrics.ValidValues(), "|")+"]",
		"The `metric` to rank processes by",
	)
	gocore.Flags.Var(
		&flags.workers,
		"workers",
		"[-workers <n>]",
		"The number of processes to sample concurrently",
	)
}
