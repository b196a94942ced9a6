// Copyright © 2025 The Gomon Project.

package main

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/zosmac/gocore"
	"github.com/zosmac/goproc/display"
	"github.com/zosmac/goproc/process"
	"github.com/zosmac/goproc/serve"
	"github.com/zosmac/goproc/session"
)

// main
func main() {
	gocore.Main(Main)
}

// Main called from gocore.Main.
func Main(ctx context.Context) error {
	src, err := process.NewSource()
	if err != nil {
		return gocore.Error("process source", err)
	}

	cfg := session.Config{
		Metric:  flags.metric,
		Workers: flags.workers,
	}

	// fire up the http server
	if serve.Enabled() {
		c := serve.NewCollector(src, flags.workers)
		serve.Serve(ctx, c)
		cfg.Observer = c
	}

	executable, _ := os.Executable()
	gocore.Error("start", nil, map[string]string{
		"pid":        strconv.Itoa(os.Getpid()),
		"command":    strings.Join(os.Args, " "),
		"executable": executable,
		"version":    gocore.Version,
		"user":       gocore.Username(os.Getuid()),
	}).Info()

	session.New(
		src,
		process.Killer,
		display.NewTerminal(os.Stdout, int(flags.top)),
		os.Stdin,
		cfg,
	).Run(ctx)

	gocore.Error("stop", nil, map[string]string{
		"command": os.Args[0],
	}).Info()

	return nil
}
