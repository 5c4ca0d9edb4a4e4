// Package commands implements the CLI commands for sambactl.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uglygus/sambactl/internal/confstore"
	"github.com/uglygus/sambactl/internal/logger"
	"github.com/uglygus/sambactl/internal/privexec"
	"github.com/uglygus/sambactl/internal/registry"
	"github.com/uglygus/sambactl/internal/system"
	"github.com/uglygus/sambactl/pkg/config"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Global flags.
	cfgFile string
)

// rootCmd represents the base command. Called without a subcommand it
// starts the interactive add flow.
var rootCmd = &cobra.Command{
	Use:   "sambactl",
	Short: "Manage Samba network shares",
	Long: `sambactl manages share sections in the Samba configuration file.

It lists, adds, and removes share definitions in smb.conf, backing up
the file before every change and restarting the Samba service so the
changes take effect. Run without a subcommand to add a share
interactively.

Use "sambactl [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runAdd,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/sambactl/config.yaml)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)

	// Hide the default completion command (we provide our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig loads the configuration and initializes logging from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}

// buildRegistry wires the share registry against the configured smb.conf
// with the execution strategy for the current privilege level.
func buildRegistry(cfg *config.Config) (*registry.Registry, privexec.Executor) {
	exec := privexec.Detect()
	store := confstore.New(cfg.Samba.ConfPath, cfg.Samba.BackupPath, exec)
	return registry.New(store, exec, system.NewAccounts(exec), system.NewSmbpasswd(exec)), exec
}

// restartService restarts the configured Samba service so config changes
// take effect.
func restartService(cmd *cobra.Command, cfg *config.Config, exec privexec.Executor) error {
	svc := system.NewServiceController(exec)
	if err := svc.Restart(cmd.Context(), cfg.Samba.Service); err != nil {
		return fmt.Errorf("failed to restart %s: %w", cfg.Samba.Service, err)
	}
	return nil
}
