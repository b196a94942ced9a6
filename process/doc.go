// Copyright © 2025 The Gomon Project.

/*
Package process performs the following for the "goproc" command:
  - enumeration of the processes on the host
  - sampling of each process' cumulative CPU time, resident memory, and command line
  - ranking of a batch of samples by a metric
  - termination of a process by identifier
*/
package process
