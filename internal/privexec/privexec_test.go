package privexec

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommandValidation(t *testing.T) {
	cmd, err := New("systemctl", "restart", "smbd")
	require.NoError(t, err)
	assert.Equal(t, "systemctl", cmd.Name())
	assert.Equal(t, []string{"restart", "smbd"}, cmd.Args())
	assert.Equal(t, []string{"systemctl", "restart", "smbd"}, cmd.Argv())
	assert.Equal(t, "systemctl restart smbd", cmd.String())

	for _, name := range []string{"", "   ", "\t"} {
		_, err := New(name)
		require.Error(t, err)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	}
}

func TestMustNewPanicsOnBlankName(t *testing.T) {
	assert.Panics(t, func() { MustNew("") })
	assert.NotPanics(t, func() { MustNew("ls") })
}

func TestExitErrorMessage(t *testing.T) {
	err := &ExitError{Cmd: "dpkg -s samba", ExitCode: 1, Stderr: "package not installed\n"}
	assert.Contains(t, err.Error(), "dpkg -s samba")
	assert.Contains(t, err.Error(), "exit code 1")
	assert.Contains(t, err.Error(), "package not installed")
}

func TestDirectRunCapturesStdout(t *testing.T) {
	d := NewDirect()

	out, err := d.Run(context.Background(), MustNew("echo", "hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestDirectRunReportsExitError(t *testing.T) {
	d := NewDirect()

	_, err := d.Run(context.Background(), MustNew("false"))
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode)
}

func TestDirectCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0o644))

	d := NewDirect()
	require.NoError(t, d.Copy(context.Background(), src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "content", string(got))

	err = d.Copy(context.Background(), filepath.Join(dir, "missing"), dst)
	assert.Error(t, err)
}

func TestDirectMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("moved"), 0o644))

	d := NewDirect()
	require.NoError(t, d.Move(context.Background(), src, dst))

	_, err := os.Stat(src)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "moved", string(got))
}

func TestDirectAppendText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf")

	d := NewDirect()
	require.NoError(t, d.AppendText(context.Background(), path, "first\n"))
	require.NoError(t, d.AppendText(context.Background(), path, "second\n"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(got))
}

func TestDirectReplaceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0o644))

	d := NewDirect()
	require.NoError(t, d.ReplaceFile(context.Background(), path, "new content"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new content", string(got))

	// No stray temp files left behind in the target directory.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSudoArgvPrefix(t *testing.T) {
	s := NewSudo()

	argv := s.argv(MustNew("apt-get", "install", "-y", "samba"))
	assert.Equal(t, []string{"sudo", "apt-get", "install", "-y", "samba"}, argv)
}

func TestDetectReturnsStrategyForPrivilege(t *testing.T) {
	exec := Detect()
	if os.Geteuid() == 0 {
		assert.IsType(t, &Direct{}, exec)
	} else {
		assert.IsType(t, &Sudo{}, exec)
	}
}
