package privexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/google/renameio/v2"
	"github.com/uglygus/sambactl/internal/logger"
)

// Direct performs file operations in-process and runs commands without a
// privilege bridge. Used when the process is already root.
type Direct struct{}

// NewDirect returns the in-process executor.
func NewDirect() *Direct {
	return &Direct{}
}

func (d *Direct) Run(ctx context.Context, cmd Command) (string, error) {
	return runArgv(ctx, cmd.Argv())
}

func (d *Direct) RunInteractive(ctx context.Context, cmd Command) error {
	return runInteractiveArgv(ctx, cmd.Argv())
}

func (d *Direct) Copy(ctx context.Context, src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}

func (d *Direct) Move(ctx context.Context, src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	// Rename fails across filesystems; fall back to copy + unlink.
	if err := d.Copy(ctx, src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func (d *Direct) AppendText(ctx context.Context, path, text string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", path, err)
	}
	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	return f.Close()
}

func (d *Direct) ReplaceFile(ctx context.Context, path, content string) error {
	if err := renameio.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// runArgv executes argv and returns captured stdout. Non-zero exits become
// *ExitError carrying the captured stderr.
func runArgv(ctx context.Context, argv []string) (string, error) {
	logger.Info("running command", "cmd", joined(argv))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), wrapRunError(argv, err, stderr.String())
	}
	return stdout.String(), nil
}

// runArgvWithInput is runArgv with text piped to the command's stdin.
func runArgvWithInput(ctx context.Context, argv []string, input string) error {
	logger.Info("running command", "cmd", joined(argv))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = bytes.NewBufferString(input)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return wrapRunError(argv, err, stderr.String())
	}
	return nil
}

// runInteractiveArgv executes argv attached to the process's terminal.
func runInteractiveArgv(ctx context.Context, argv []string) error {
	logger.Info("running command", "cmd", joined(argv))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return wrapRunError(argv, err, "")
	}
	return nil
}

func wrapRunError(argv []string, err error, stderr string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Cmd: joined(argv), ExitCode: exitErr.ExitCode(), Stderr: stderr}
	}
	return fmt.Errorf("failed to run %q: %w", joined(argv), err)
}

func joined(argv []string) string {
	return Command{name: argv[0], args: argv[1:]}.String()
}
