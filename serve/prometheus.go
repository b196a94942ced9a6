// Copyright © 2025 The Gomon Project.

package serve

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zosmac/gocore"
	"github.com/zosmac/goproc/process"

	"gopkg.in/yaml.v3"
)

type (
	// Collector complies with the Prometheus Collector interface and the session Observer
	// interface. Each collection samples a fresh batch of processes.
	Collector struct {
		source  process.Source
		workers int

		cycles       prometheus.Counter
		sampleTime   prometheus.Gauge
		processes    prometheus.Gauge
		sampleErrors *prometheus.CounterVec
		kills        *prometheus.CounterVec
	}

	// prometheusJson defines the prometheus configuration query response envelope.
	prometheusJson struct {
		Status string `json:"status"`
		Data   struct {
			Yaml string `json:"yaml"` // []byte type unmarshals as base-64 :(
		} `json:"data"`
	}

	// prometheusYaml defines the prometheus configuration query response content.
	prometheusYaml struct {
		Global struct {
			ScrapeInterval string `yaml:"scrape_interval"`
		} `yaml:"global"`
		ScrapeConfigs []struct {
			Jobname        string `yaml:"job_name"`
			ScrapeInterval string `yaml:"scrape_interval"`
		} `yaml:"scrape_configs"`
	}
)

var (
	// cpuDesc describes each process' cumulative CPU time.
	cpuDesc = prometheus.NewDesc(
		"goproc_process_cpu_seconds_total",
		"Cumulative user and system CPU time consumed by the process.",
		[]string{"pid", "command"},
		nil,
	)

	// residentDesc describes each process' resident memory.
	residentDesc = prometheus.NewDesc(
		"goproc_process_resident_memory_bytes",
		"Resident set size of the process.",
		[]string{"pid", "command"},
		nil,
	)

	// prometheusClient queries Prometheus, which may not be running.
	prometheusClient = &http.Client{Timeout: 5 * time.Second}

	// prometheusConfigURL is the REST query to retrieve the configuration.
	prometheusConfigURL = url.URL{
		Scheme: "http",
		Host:   "localhost:9090",
		Path:   "/api/v1/status/config",
	}
)

// NewCollector creates a collector that samples processes from src.
func NewCollector(src process.Source, workers int) *Collector {
	return &Collector{
		source:  src,
		workers: workers,
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "goproc_session_cycles_total",
			Help: "Sampling cycles run by the interactive session.",
		}),
		sampleTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "goproc_session_sample_seconds",
			Help: "Time the last session cycle took to sample all processes.",
		}),
		processes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "goproc_session_processes",
			Help: "Processes in the last session cycle.",
		}),
		sampleErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "goproc_session_sample_errors_total",
			Help: "Processes the session could not fully sample.",
		}, []string{"reason"}),
		kills: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "goproc_session_kills_total",
			Help: "Terminations requested by the operator.",
		}, []string{"result"}),
	}
}

// Describe returns metric descriptions for Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- cpuDesc
	ch <- residentDesc
	c.cycles.Describe(ch)
	c.sampleTime.Describe(ch)
	c.processes.Describe(ch)
	c.sampleErrors.Describe(ch)
	c.kills.Describe(ch)
}

// Collect returns the current state of all metrics to Prometheus.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.cycles.Collect(ch)
	c.sampleTime.Collect(ch)
	c.processes.Collect(ch)
	c.sampleErrors.Collect(ch)
	c.kills.Collect(ch)

	pids, err := process.Enumerate(c.source)
	if err != nil {
		gocore.Error("prometheus collect", err).Warn()
		return
	}
	for _, s := range process.SampleAll(c.source, pids, c.workers) {
		if errors.Is(s.Err, process.ErrNotFound) {
			continue
		}
		pid, cmd := s.Pid.String(), command(s.CommandLine)
		ch <- prometheus.MustNewConstMetric(cpuDesc, prometheus.CounterValue, s.CPUSeconds, pid, cmd)
		ch <- prometheus.MustNewConstMetric(residentDesc, prometheus.GaugeValue, s.ResidentMB*(1<<20), pid, cmd)
	}
}

// Cycle records a session cycle.
func (c *Collector) Cycle(batch []process.Snapshot, elapsed time.Duration) {
	c.cycles.Inc()
	c.sampleTime.Set(elapsed.Seconds())
	c.processes.Set(float64(len(batch)))
	for _, s := range batch {
		switch {
		case errors.Is(s.Err, process.ErrNotFound):
			c.sampleErrors.WithLabelValues("not_found").Inc()
		case errors.Is(s.Err, process.ErrPartial):
			c.sampleErrors.WithLabelValues("partial").Inc()
		}
	}
}

// Killed records the outcome of a termination.
func (c *Collector) Killed(_ process.Pid, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	c.kills.WithLabelValues(result).Inc()
}

// command makes a command line a valid label value of limited length.
func command(cl string) string {
	cl = strings.ToValidUTF8(cl, "\uFFFD")
	if r := []rune(cl); len(r) > 64 {
		return string(r[:64])
	}
	return cl
}

// scrapeInterval asks Prometheus for the scrape interval it will query goproc for metrics.
func scrapeInterval() (time.Duration, error) {
	resp, err := prometheusClient.Get(prometheusConfigURL.String())
	if err != nil {
		return 0, gocore.Error("prometheus query", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return 0, gocore.Error("prometheus query", err)
	}

	jsn := prometheusJson{}
	if err := json.Unmarshal(body, &jsn); err != nil {
		return 0, gocore.Error("prometheus query", err)
	}
	if jsn.Status != "success" {
		return 0, gocore.Error("prometheus query", errors.New("status "+jsn.Status))
	}

	yml := prometheusYaml{}
	if err := yaml.Unmarshal([]byte(jsn.Data.Yaml), &yml); err != nil {
		return 0, gocore.Error("prometheus yaml", err)
	}

	for _, config := range yml.ScrapeConfigs {
		if config.Jobname == "goproc" {
			return time.ParseDuration(config.ScrapeInterval)
		}
	}

	return time.ParseDuration(yml.Global.ScrapeInterval)
}
