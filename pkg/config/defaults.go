package config

import "strings"

// GetDefaultConfig returns a configuration with every default applied.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any unspecified fields. Zero
// values are replaced; explicit values are preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applySambaDefaults(&cfg.Samba)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

func applySambaDefaults(cfg *SambaConfig) {
	if cfg.ConfPath == "" {
		cfg.ConfPath = "/etc/samba/smb.conf"
	}
	if cfg.BackupPath == "" {
		cfg.BackupPath = cfg.ConfPath + ".bak"
	}
	if cfg.Service == "" {
		cfg.Service = "smbd"
	}
	if len(cfg.Packages) == 0 {
		cfg.Packages = []string{"samba", "samba-common-bin"}
	}
}
