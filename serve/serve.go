// Copyright © 2025 The Gomon Project.

// Package serve exposes goproc's process and session metrics to Prometheus.
package serve

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zosmac/gocore"
)

// Handler responds to Prometheus Collect requests and to profiling queries.
func Handler(c *Collector) http.Handler {
	// we don't use the default registry as it adds Go runtime metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(c)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// enable the server to handle /debug/pprof queries
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

// Serve starts the metrics server on the -port flag's port. The server shuts down when
// the context is canceled.
func Serve(ctx context.Context, c *Collector) {
	server := &http.Server{
		Addr:    "localhost:" + strconv.Itoa(flags.port),
		Handler: Handler(c),
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	go func() {
		if si, err := scrapeInterval(); err == nil {
			gocore.Error("prometheus scrape", nil, map[string]string{
				"interval": si.String(),
			}).Info()
		}
	}()

	go func() {
		gocore.Error("goproc server", nil, map[string]string{
			"listen": "http://" + server.Addr,
		}).Info()
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			gocore.Error("goproc server", err).Err()
		}
	}()
}
