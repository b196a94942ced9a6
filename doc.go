// Copyright © 2025 The Gomon Project.

/*
Package main implements the Go language "goproc" interactive process monitor. Each cycle goproc
samples the cumulative CPU time and resident memory of every process, ranks them, and displays
them in a table. The operator then enters
  - k<PID>: to kill the process with SIGKILL
  - r:      to refresh (any other input also refreshes)
  - q:      to quit (as does closing the input)

The main package defines the following command line flags:
  - -top:     to limit the number of processes displayed (default 0, all)
  - -sort:    to rank by cpu, mem, or pid (default cpu)
  - -workers: to set the number of processes sampled concurrently (default the number of CPUs)
  - -port:    to serve Prometheus metrics on localhost:port/metrics (default 0, disabled)
*/
package main
