// Copyright © 2025 The Gomon Project.

package serve

import (
	"github.com/zosmac/gocore"
)

var (
	// flags defines the command line flags.
	flags = struct {
		port int
	}{
		port: 0,
	}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.port,
		"port",
		"[-port n]",
		"Port number for the Prometheus /metrics endpoint, 0 to disable",
	)
}

// Enabled reports whether the -port flag requests the metrics endpoint.
func Enabled() bool {
	return flags.port > 0
}
