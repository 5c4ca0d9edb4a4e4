package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareListRendering(t *testing.T) {
	sl := ShareList{
		{Name: "Shared", Path: "/home/pi/shared"},
		{Name: "media", Path: "/srv/media"},
	}

	assert.Equal(t, []string{"NAME", "PATH"}, sl.Headers())
	require.Len(t, sl.Rows(), 2)
	assert.Equal(t, []string{"media", "/srv/media"}, sl.Rows()[1])
}

func TestResolveAddRequestFromFlags(t *testing.T) {
	addName = "media"
	addPath = "/srv/media"
	addOwner = ""
	addGuest = true
	t.Cleanup(func() { addName, addPath, addOwner, addGuest = "", "", "", false })

	req, err := resolveAddRequest()
	require.NoError(t, err)
	assert.Equal(t, "media", req.Name)
	assert.Equal(t, "/srv/media", req.Path)
	assert.True(t, req.Guest)
}

func TestRootCommandWiring(t *testing.T) {
	root := GetRootCmd()

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"add", "list", "remove", "restart", "setup", "watch", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}

	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)
}
