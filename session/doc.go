// Copyright © 2025 The Gomon Project.

/*
Package session drives the interactive "goproc" loop. Each cycle samples every process,
hands the ranked batch to a display sink, and then waits for one line of operator input:
  - q... quits
  - k<pid> kills the process
  - anything else refreshes
*/
package session
