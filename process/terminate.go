// Copyright © 2025 The Gomon Project.

package process

type (
	// Terminator delivers an unconditional termination signal to a process.
	Terminator interface {
		Terminate(Pid) error
	}

	// TerminatorFunc adapts a function to the Terminator interface.
	TerminatorFunc func(Pid) error
)

var (
	// Killer terminates processes with the host's kill primitive.
	Killer Terminator = TerminatorFunc(Kill)
)

// Terminate calls f(pid).
func (f TerminatorFunc) Terminate(pid Pid) error {
	return f(pid)
}
