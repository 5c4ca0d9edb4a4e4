package registry

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uglygus/sambactl/internal/confstore"
	"github.com/uglygus/sambactl/internal/privexec"
)

// fakeExec performs file operations in-process but records commands
// instead of executing them, since tests run without root or sudo.
type fakeExec struct {
	*privexec.Direct
	commands    []string
	interactive []string
}

func (f *fakeExec) Run(ctx context.Context, cmd privexec.Command) (string, error) {
	f.commands = append(f.commands, cmd.String())
	return "", nil
}

func (f *fakeExec) RunInteractive(ctx context.Context, cmd privexec.Command) error {
	f.interactive = append(f.interactive, cmd.String())
	return nil
}

type fakeAccounts struct {
	ensured []string
}

func (f *fakeAccounts) EnsureAccount(ctx context.Context, username string) error {
	f.ensured = append(f.ensured, username)
	return nil
}

type fakeCreds struct {
	passwords []string
	enabled   []string
}

func (f *fakeCreds) SetPassword(ctx context.Context, username string) error {
	f.passwords = append(f.passwords, username)
	return nil
}

func (f *fakeCreds) EnableAccount(ctx context.Context, username string) error {
	f.enabled = append(f.enabled, username)
	return nil
}

type fixture struct {
	reg      *Registry
	exec     *fakeExec
	accounts *fakeAccounts
	creds    *fakeCreds
	confPath string
	bakPath  string
	dir      string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		exec:     &fakeExec{Direct: privexec.NewDirect()},
		accounts: &fakeAccounts{},
		creds:    &fakeCreds{},
		confPath: filepath.Join(dir, "smb.conf"),
		bakPath:  filepath.Join(dir, "smb.conf.bak"),
		dir:      dir,
	}
	store := confstore.New(f.confPath, f.bakPath, f.exec)
	f.reg = New(store, f.exec, f.accounts, f.creds)
	return f
}

func (f *fixture) writeConf(t *testing.T, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(f.confPath, []byte(text), 0o644))
}

func (f *fixture) readConf(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.confPath)
	require.NoError(t, err)
	return string(data)
}

const exampleConf = `[global]
  workgroup = WORKGROUP
[Shared]
  path = /home/pi/shared
`

func TestListExample(t *testing.T) {
	f := newFixture(t)
	f.writeConf(t, exampleConf)

	shares, err := f.reg.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Share{{Name: "Shared", Path: "/home/pi/shared"}}, shares)
}

func TestListMissingFileIsEmpty(t *testing.T) {
	f := newFixture(t)

	shares, err := f.reg.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, shares)
}

func TestListExcludesGlobalAnyCase(t *testing.T) {
	f := newFixture(t)
	f.writeConf(t, "[GLOBAL]\n  workgroup = X\n[Global]\n  foo = bar\n[data]\n  path = /srv/data\n")

	shares, err := f.reg.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Share{{Name: "data", Path: "/srv/data"}}, shares)
}

func TestListShareWithoutPathHasEmptyPath(t *testing.T) {
	f := newFixture(t)
	f.writeConf(t, "[broken]\n  comment = no path here\n")

	shares, err := f.reg.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Share{{Name: "broken", Path: ""}}, shares)
}

func TestListDuplicateNamesLastWriteWins(t *testing.T) {
	f := newFixture(t)
	f.writeConf(t, "[dup]\n  path = /first\n[other]\n  path = /o\n[dup]\n  path = /second\n")

	shares, err := f.reg.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Share{{Name: "dup", Path: "/second"}, {Name: "other", Path: "/o"}}, shares)
}

func TestAddGuestShare(t *testing.T) {
	f := newFixture(t)
	f.writeConf(t, exampleConf)
	sharePath := filepath.Join(f.dir, "public")

	err := f.reg.Add(context.Background(), AddRequest{Name: "Public", Path: sharePath, Guest: true})
	require.NoError(t, err)

	shares, err := f.reg.List(context.Background())
	require.NoError(t, err)
	assert.Contains(t, shares, Share{Name: "Public", Path: sharePath})

	conf := f.readConf(t)
	assert.Contains(t, conf, "guest ok = yes")
	assert.NotContains(t, conf, "public = yes")

	// Directory created, permissions opened, but no account or credential
	// work for a guest share.
	info, err := os.Stat(sharePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Empty(t, f.accounts.ensured)
	assert.Empty(t, f.creds.passwords)
	require.Len(t, f.exec.commands, 1)
	assert.Equal(t, "chmod -R 777 "+sharePath, f.exec.commands[0])
}

func TestAddAuthenticatedShare(t *testing.T) {
	f := newFixture(t)
	f.writeConf(t, exampleConf)
	sharePath := filepath.Join(f.dir, "docs")

	err := f.reg.Add(context.Background(), AddRequest{Name: "Docs", Path: sharePath, Owner: "bob"})
	require.NoError(t, err)

	conf := f.readConf(t)
	assert.Contains(t, conf, "only guest = no")
	assert.Contains(t, conf, "public = yes")

	assert.Equal(t, []string{"bob"}, f.accounts.ensured)
	assert.Equal(t, []string{"bob"}, f.creds.passwords)
	assert.Equal(t, []string{"bob"}, f.creds.enabled)
	require.Len(t, f.exec.commands, 2)
	assert.Equal(t, "chown -R bob:bob "+sharePath, f.exec.commands[0])
	assert.Equal(t, "chmod -R 777 "+sharePath, f.exec.commands[1])
}

func TestAddBacksUpBeforeAppend(t *testing.T) {
	f := newFixture(t)
	f.writeConf(t, exampleConf)

	err := f.reg.Add(context.Background(), AddRequest{Name: "New", Path: filepath.Join(f.dir, "new"), Guest: true})
	require.NoError(t, err)

	bak, err := os.ReadFile(f.bakPath)
	require.NoError(t, err)
	assert.Equal(t, exampleConf, string(bak), "backup holds the pre-mutation content")
	assert.True(t, strings.HasPrefix(f.readConf(t), exampleConf), "append preserved the existing text")
}

func TestAddDuplicateRejected(t *testing.T) {
	f := newFixture(t)
	f.writeConf(t, exampleConf)

	err := f.reg.Add(context.Background(), AddRequest{Name: "Shared", Path: filepath.Join(f.dir, "x"), Guest: true})
	assert.ErrorIs(t, err, ErrShareExists)
}

func TestAddWithMissingConfigFile(t *testing.T) {
	f := newFixture(t)

	err := f.reg.Add(context.Background(), AddRequest{Name: "First", Path: filepath.Join(f.dir, "first"), Guest: true})
	require.NoError(t, err)

	shares, err := f.reg.List(context.Background())
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, "First", shares[0].Name)

	// Nothing existed to back up.
	_, err = os.Stat(f.bakPath)
	assert.True(t, os.IsNotExist(err))
}

func TestAddValidation(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(f.dir, "p")

	cases := []AddRequest{
		{Name: "", Path: path, Guest: true},
		{Name: "has[bracket", Path: path, Guest: true},
		{Name: "global", Path: path, Guest: true},
		{Name: "GLOBAL", Path: path, Guest: true},
		{Name: "ok", Path: "", Guest: true},
		{Name: "ok", Path: path, Guest: false, Owner: ""},
	}
	for _, req := range cases {
		assert.Error(t, f.reg.Add(context.Background(), req), "request %+v", req)
	}
}

func TestRemoveExample(t *testing.T) {
	f := newFixture(t)
	f.writeConf(t, exampleConf)

	found, err := f.reg.Remove(context.Background(), "Shared")
	require.NoError(t, err)
	assert.True(t, found)

	shares, err := f.reg.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, shares)

	// The global section survives.
	assert.Contains(t, f.readConf(t), "[global]")

	bak, err := os.ReadFile(f.bakPath)
	require.NoError(t, err)
	assert.Equal(t, exampleConf, string(bak))
}

func TestRemoveUnknownNameIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.writeConf(t, exampleConf)

	found, err := f.reg.Remove(context.Background(), "nothere")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, exampleConf, f.readConf(t), "config byte-identical after no-op removal")
}

func TestRemoveMissingFileFails(t *testing.T) {
	f := newFixture(t)

	_, err := f.reg.Remove(context.Background(), "anything")
	assert.ErrorIs(t, err, confstore.ErrNotFound)
}

func TestRemovePreservesUnrelatedText(t *testing.T) {
	f := newFixture(t)
	text := "; preamble comment\n[global]\n  workgroup = W\n[a]\n  path = /a\n  ; inline note\n[b]\n  path = /b\n"
	f.writeConf(t, text)

	found, err := f.reg.Remove(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "; preamble comment\n[global]\n  workgroup = W\n[b]\n  path = /b\n", f.readConf(t))
}
