// Copyright © 2025 The Gomon Project.

package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/zosmac/gocore"
	"github.com/zosmac/goproc/process"
)

type (
	// State of the session loop.
	State int

	// Sink renders a ranked batch of snapshots for the operator.
	Sink interface {
		// Display renders the batch and an optional status message.
		Display(batch []process.Snapshot, status string)
		// Prompt asks the operator for the next command.
		Prompt()
	}

	// Observer is notified of session events.
	Observer interface {
		// Cycle reports a sampled batch and the time sampling took.
		Cycle(batch []process.Snapshot, elapsed time.Duration)
		// Killed reports the outcome of a termination.
		Killed(pid process.Pid, err error)
	}

	// Config tunes a session.
	Config struct {
		Metric   process.Metric // ranking metric, cpu if empty
		Workers  int            // concurrent samplers
		Observer Observer       // optional
	}

	// Session is the interactive sample, display, and command loop.
	Session struct {
		source     process.Source
		terminator process.Terminator
		sink       Sink
		input      *bufio.Reader
		config     Config

		state  State
		batch  []process.Snapshot // current cycle only
		action Action
		status string
	}

	// nopObserver ignores session events.
	nopObserver struct{}
)

var (
	// errLineTooLong reports an input line that exceeds the input buffer.
	errLineTooLong = errors.New("input line too long")
)

const (
	Sampling State = iota
	Displaying
	AwaitingInput
	Refreshing
	Killing
	Terminating
)

// String names the state.
func (s State) String() string {
	return [...]string{
		"Sampling",
		"Displaying",
		"AwaitingInput",
		"Refreshing",
		"Killing",
		"Terminating",
	}[s]
}

func (nopObserver) Cycle([]process.Snapshot, time.Duration) {}
func (nopObserver) Killed(process.Pid, error)               {}

// New creates a session reading operator commands from input.
func New(src process.Source, t process.Terminator, sink Sink, input io.Reader, cfg Config) *Session {
	if cfg.Metric == "" {
		cfg.Metric = process.MetricCPU
	}
	if cfg.Observer == nil {
		cfg.Observer = nopObserver{}
	}
	return &Session{
		source:     src,
		terminator: t,
		sink:       sink,
		input:      bufio.NewReader(input),
		config:     cfg,
	}
}

// State reports the session's current state.
func (s *Session) State() State {
	return s.state
}

// Run cycles until the operator quits, the input closes, or the context is canceled.
func (s *Session) Run(ctx context.Context) {
	for s.state = Sampling; s.state != Terminating; {
		s.state = s.step(ctx)
	}
}

// step performs the work of the current state and returns the next state.
func (s *Session) step(ctx context.Context) State {
	switch s.state {
	case Sampling:
		if ctx.Err() != nil {
			return Terminating
		}
		s.sample()
		return Displaying

	case Displaying:
		s.sink.Display(process.Rank(s.batch, s.config.Metric), s.status)
		s.batch = nil
		s.status = ""
		return AwaitingInput

	case AwaitingInput:
		return s.await()

	case Refreshing:
		return Sampling

	case Killing:
		s.kill(s.action.Pid)
		return Sampling
	}

	return Terminating
}

// sample builds this cycle's batch.
func (s *Session) sample() {
	start := time.Now()
	pids, err := process.Enumerate(s.source)
	if err != nil {
		gocore.Error("enumerate", err).Warn()
		s.status = err.Error()
	}
	s.batch = process.SampleAll(s.source, pids, s.config.Workers)
	s.config.Observer.Cycle(s.batch, time.Since(start))
}

// await blocks for one line of operator input and interprets it.
func (s *Session) await() State {
	s.sink.Prompt()
	line, err := s.readLine()
	if errors.Is(err, errLineTooLong) {
		s.status = "Input line too long, refreshed"
		return Refreshing
	}
	if err != nil {
		if !errors.Is(err, io.EOF) {
			gocore.Error("input", err).Warn()
		}
		return Terminating // closed input is the same as quit
	}

	a, err := Parse(line)
	if err != nil {
		s.status = "Invalid PID: " + strings.TrimSpace(a.Raw[1:])
		return Refreshing
	}
	s.action = a

	switch a.Kind {
	case Quit:
		return Terminating
	case Kill:
		return Killing
	}
	if a.Unknown() {
		s.status = fmt.Sprintf("Unknown command %q, refreshed", a.Raw)
	}
	return Refreshing
}

// readLine reads one line of operator input. A line longer than the reader's buffer is
// consumed through its end and reported as errLineTooLong.
func (s *Session) readLine() (string, error) {
	line, more, err := s.input.ReadLine()
	if err != nil {
		return "", err
	}
	if !more {
		return string(line), nil
	}
	for more && err == nil {
		_, more, err = s.input.ReadLine()
	}
	return "", errLineTooLong
}

// kill terminates a process and records the outcome for the next display.
func (s *Session) kill(pid process.Pid) {
	err := s.terminator.Terminate(pid)
	s.config.Observer.Killed(pid, err)
	if err != nil {
		s.status = fmt.Sprintf("Kill failed: %v", err)
		return
	}
	s.status = "Killed PID: " + pid.String()
}
