package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "/etc/samba/smb.conf", cfg.Samba.ConfPath)
	assert.Equal(t, "/etc/samba/smb.conf.bak", cfg.Samba.BackupPath)
	assert.Equal(t, "smbd", cfg.Samba.Service)
	assert.Equal(t, []string{"samba", "samba-common-bin"}, cfg.Samba.Packages)

	require.NoError(t, Validate(cfg))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
samba:
  conf_path: /tmp/smb.conf
  service: samba
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "/tmp/smb.conf", cfg.Samba.ConfPath)
	// Backup defaults next to the configured conf path.
	assert.Equal(t, "/tmp/smb.conf.bak", cfg.Samba.BackupPath)
	assert.Equal(t, "samba", cfg.Samba.Service)
	assert.Equal(t, []string{"samba", "samba-common-bin"}, cfg.Samba.Packages)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o644))

	t.Setenv("SAMBACTL_LOGGING_LEVEL", "ERROR")
	t.Setenv("SAMBACTL_SAMBA_SERVICE", "nmbd")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ERROR", cfg.Logging.Level)
	assert.Equal(t, "nmbd", cfg.Samba.Service)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [broken\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsEmptyPackages(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Samba.Packages = nil
	assert.Error(t, Validate(cfg))

	cfg.Samba.Packages = []string{""}
	assert.Error(t, Validate(cfg))
}
