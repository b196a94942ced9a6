// Copyright © 2025 The Gomon Project.

package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zosmac/goproc/process"
)

type (
	// Kind classifies an operator action.
	Kind int

	// Action is the interpretation of one line of operator input.
	Action struct {
		Kind Kind
		Pid  process.Pid // for Kill
		Raw  string
	}
)

const (
	Refresh Kind = iota
	Quit
	Kill
)

var (
	// ErrInvalidPid reports a kill command whose target is not a positive integer.
	ErrInvalidPid = errors.New("invalid pid")
)

// String names the kind.
func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case Kill:
		return "kill"
	}
	return "refresh"
}

// Parse interprets a line of operator input. A leading 'q' quits, a leading 'k' followed
// by a positive pid kills, and anything else, including an empty line, refreshes.
// A 'k' without a valid pid returns an error wrapping ErrInvalidPid.
func Parse(line string) (Action, error) {
	raw := strings.TrimSpace(line)
	a := Action{Kind: Refresh, Raw: raw}
	if raw == "" {
		return a, nil
	}

	switch raw[0] {
	case 'q':
		a.Kind = Quit
	case 'k':
		arg := strings.TrimSpace(raw[1:])
		pid, err := strconv.Atoi(arg)
		if err != nil || pid <= 0 || strings.TrimLeft(arg, "0123456789") != "" {
			return Action{Kind: Refresh, Raw: raw}, fmt.Errorf("%w: %q", ErrInvalidPid, arg)
		}
		a.Kind = Kill
		a.Pid = process.Pid(pid)
	}

	return a, nil
}

// Unknown reports whether the action is a refresh that the operator did not ask for
// explicitly with an empty line or 'r'.
func (a Action) Unknown() bool {
	return a.Kind == Refresh && a.Raw != "" && a.Raw[0] != 'r'
}
