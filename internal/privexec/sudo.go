package privexec

import (
	"context"
	"fmt"
	"os"
)

// Sudo delegates every capability through the sudo privilege bridge.
// File operations become cp/mv/tee invocations so they run with root's
// permissions even though this process has none.
type Sudo struct{}

// NewSudo returns the delegating executor.
func NewSudo() *Sudo {
	return &Sudo{}
}

func (s *Sudo) Run(ctx context.Context, cmd Command) (string, error) {
	return runArgv(ctx, s.argv(cmd))
}

func (s *Sudo) RunInteractive(ctx context.Context, cmd Command) error {
	return runInteractiveArgv(ctx, s.argv(cmd))
}

func (s *Sudo) Copy(ctx context.Context, src, dst string) error {
	_, err := runArgv(ctx, []string{"sudo", "cp", src, dst})
	return err
}

func (s *Sudo) Move(ctx context.Context, src, dst string) error {
	_, err := runArgv(ctx, []string{"sudo", "mv", src, dst})
	return err
}

func (s *Sudo) AppendText(ctx context.Context, path, text string) error {
	// tee -a reads the block from stdin, so the text itself never passes
	// through a shell.
	return runArgvWithInput(ctx, []string{"sudo", "tee", "-a", path}, text)
}

func (s *Sudo) ReplaceFile(ctx context.Context, path, content string) error {
	tmp, err := os.CreateTemp("", "sambactl-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// The temp file lives on the caller's filesystem, so the final step is
	// a privileged copy rather than a rename. Not atomic; root runs get
	// the atomic direct path instead.
	return s.Copy(ctx, tmpName, path)
}

func (s *Sudo) argv(cmd Command) []string {
	return append([]string{"sudo"}, cmd.Argv()...)
}
