// Copyright © 2025 The Gomon Project.

package process

import (
	"strings"

	"github.com/prometheus/procfs"
	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

const (
	// defaultHz is USER_HZ on every mainstream linux architecture.
	defaultHz = 100
)

var (
	// errVanished is the errno for reads of /proc entries whose process has exited.
	errVanished error = unix.ESRCH
)

type (
	// procSource reads process accounting from the /proc filesystem.
	procSource struct {
		fs procfs.FS
		hz uint64
	}
)

// NewSource returns the Source for the host's /proc filesystem.
func NewSource() (Source, error) {
	return newProcSource(procfs.DefaultMountPoint)
}

// newProcSource opens a proc filesystem mounted at mountPoint.
func newProcSource(mountPoint string) (*procSource, error) {
	fs, err := procfs.NewFS(mountPoint)
	if err != nil {
		return nil, err
	}
	return &procSource{fs: fs, hz: clockTicks()}, nil
}

// clockTicks reports the kernel's clock ticks per second (i.e. "jiffies").
func clockTicks() uint64 {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || hz <= 0 {
		return defaultHz
	}
	return uint64(hz)
}

// Pids lists the numeric entries of /proc.
func (s *procSource) Pids() ([]Pid, error) {
	procs, err := s.fs.AllProcs()
	if err != nil {
		return nil, err
	}
	pids := make([]Pid, len(procs))
	for i, p := range procs {
		pids[i] = Pid(p.PID)
	}
	return pids, nil
}

// Accounting reads utime and stime from /proc/<pid>/stat.
func (s *procSource) Accounting(pid Pid) (Accounting, error) {
	p, err := s.fs.Proc(int(pid))
	if err != nil {
		return Accounting{}, err
	}
	stat, err := p.Stat()
	if err != nil {
		return Accounting{}, err
	}
	return Accounting{
		User:   uint64(stat.UTime),
		System: uint64(stat.STime),
		Hz:     s.hz,
	}, nil
}

// Memory reads VmRSS from /proc/<pid>/status.
func (s *procSource) Memory(pid Pid) (uint64, error) {
	p, err := s.fs.Proc(int(pid))
	if err != nil {
		return 0, err
	}
	status, err := p.NewStatus()
	if err != nil {
		return 0, err
	}
	return status.VmRSS / 1024, nil // procfs reports bytes
}

// CommandLine reads /proc/<pid>/cmdline, joining its arguments with spaces.
func (s *procSource) CommandLine(pid Pid) (string, error) {
	p, err := s.fs.Proc(int(pid))
	if err != nil {
		return "", err
	}
	args, err := p.CmdLine()
	if err != nil {
		return "", err
	}
	return strings.Join(args, " "), nil
}
