// Copyright © 2025 The Gomon Project.

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zosmac/goproc/process"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line    string
		kind    Kind
		pid     process.Pid
		unknown bool
	}{
		{line: "q", kind: Quit},
		{line: "quit", kind: Quit},
		{line: "  q  ", kind: Quit},
		{line: "qk123", kind: Quit},
		{line: "k4821", kind: Kill, pid: 4821},
		{line: "k 4821\n", kind: Kill, pid: 4821},
		{line: "k007", kind: Kill, pid: 7},
		{line: "", kind: Refresh},
		{line: "\n", kind: Refresh},
		{line: "r", kind: Refresh},
		{line: "refresh", kind: Refresh},
		{line: "xyz", kind: Refresh, unknown: true},
		{line: "Q", kind: Refresh, unknown: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			a, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, a.Kind)
			assert.Equal(t, tt.pid, a.Pid)
			assert.Equal(t, tt.unknown, a.Unknown())
		})
	}
}

func TestParseInvalidPid(t *testing.T) {
	for _, line := range []string{"kabc", "k", "k0", "k-5", "k+5", "k12x", "kill 12", "k99999999999999999999"} {
		t.Run(line, func(t *testing.T) {
			var a Action
			var err error
			require.NotPanics(t, func() { a, err = Parse(line) })
			require.ErrorIs(t, err, ErrInvalidPid)
			assert.NotEqual(t, Kill, a.Kind)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "kill", Kill.String())
	assert.Equal(t, "refresh", Refresh.String())
}
