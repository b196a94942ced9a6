// Copyright © 2025 The Gomon Project.

package process

import (
	"errors"
	"sort"
	"strings"

	"github.com/zosmac/gocore"
)

type (
	// Metric names the measure by which snapshots are ranked.
	Metric string
)

const (
	MetricCPU    Metric = "cpu" // CPU seconds descending
	MetricMemory Metric = "mem" // resident memory descending
	MetricPid    Metric = "pid" // pid ascending
)

var (
	// Metrics lists the valid ranking metrics.
	Metrics = gocore.ValidValue[Metric]{}.Define(
		MetricCPU,
		MetricMemory,
		MetricPid,
	)
)

// Rank returns a copy of the batch ordered by metric. Ties are broken by ascending pid,
// so the order is total and ranking a ranked batch leaves it unchanged.
func Rank(batch []Snapshot, metric Metric) []Snapshot {
	ranked := make([]Snapshot, len(batch))
	copy(ranked, batch)
	sort.Slice(ranked, func(i, j int) bool {
		return metric.less(ranked[i], ranked[j])
	})
	return ranked
}

// less orders two snapshots by the metric.
func (m Metric) less(a, b Snapshot) bool {
	switch m {
	case MetricMemory:
		return a.ResidentMB > b.ResidentMB ||
			a.ResidentMB == b.ResidentMB && a.Pid < b.Pid
	case MetricPid:
		return a.Pid < b.Pid
	default:
		return a.CPUSeconds > b.CPUSeconds ||
			a.CPUSeconds == b.CPUSeconds && a.Pid < b.Pid
	}
}

// Set is a flag.Value interface method to enable Metric as a command line flag.
func (m *Metric) Set(s string) error {
	s = strings.ToLower(s)
	if Metrics.IsValid(Metric(s)) {
		*m = Metric(s)
		return nil
	}
	return errors.New("valid values are " + strings.Join(Metrics.ValidValues(), ", "))
}

// String is a flag.Value interface method to enable Metric as a command line flag.
func (m *Metric) String() string {
	return string(*m)
}
