// Package privexec runs the privileged commands and file operations this
// tool needs against the host system.
//
// The execution strategy is resolved once at process start: a root process
// gets the Direct executor (in-process file operations, plain command
// execution), any other process gets the Sudo executor, which routes every
// capability through sudo. Callers hold a single Executor for the life of
// the process and never re-check privileges per call.
package privexec

import (
	"fmt"
	"strings"
)

// Command is a validated program invocation. The zero value is invalid;
// construct through New.
type Command struct {
	name string
	args []string
}

// ValidationError reports a command that is not a well-formed invocation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid command: " + e.Reason
}

// New builds a Command, rejecting an empty or blank program name.
func New(name string, args ...string) (Command, error) {
	if strings.TrimSpace(name) == "" {
		return Command{}, &ValidationError{Reason: "program name is empty"}
	}
	return Command{name: name, args: args}, nil
}

// MustNew is New for statically known commands; it panics on a blank name.
func MustNew(name string, args ...string) Command {
	cmd, err := New(name, args...)
	if err != nil {
		panic(err)
	}
	return cmd
}

// Name returns the program name.
func (c Command) Name() string { return c.name }

// Args returns a copy of the arguments.
func (c Command) Args() []string {
	return append([]string(nil), c.args...)
}

// Argv returns the full argument vector, program name first.
func (c Command) Argv() []string {
	return append([]string{c.name}, c.args...)
}

// String renders the command the way it would be typed in a shell.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// ExitError reports a command that ran but exited unsuccessfully.
type ExitError struct {
	Cmd      string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command %q failed with exit code %d", e.Cmd, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}
