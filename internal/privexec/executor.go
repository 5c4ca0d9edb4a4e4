package privexec

import (
	"context"
	"os"
)

// Executor is the capability set needed to realize shares on the host:
// command execution plus the privileged file operations used by the
// config store. Implementations differ only in whether they act
// in-process or delegate through sudo.
type Executor interface {
	// Run executes cmd and returns its captured standard output.
	// A non-zero exit is reported as *ExitError.
	Run(ctx context.Context, cmd Command) (string, error)

	// RunInteractive executes cmd with the process's own stdin, stdout,
	// and stderr attached, for commands that prompt (smbpasswd).
	RunInteractive(ctx context.Context, cmd Command) error

	// Copy copies src to dst, overwriting dst.
	Copy(ctx context.Context, src, dst string) error

	// Move relocates src to dst.
	Move(ctx context.Context, src, dst string) error

	// AppendText appends text to the file at path. The write is not
	// atomic; an interrupted append may leave a partial block.
	AppendText(ctx context.Context, path, text string) error

	// ReplaceFile replaces the full content of path with content. In
	// direct mode the write goes through a temp file in the same
	// directory and an atomic rename, so a crash leaves either the old
	// or the new content, never a mix.
	ReplaceFile(ctx context.Context, path, content string) error
}

// Detect picks the execution strategy from the ambient privilege of the
// current process. Call once at composition time and hold the result.
func Detect() Executor {
	if os.Geteuid() == 0 {
		return NewDirect()
	}
	return NewSudo()
}
