package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uglygus/sambactl/internal/privexec"
	"github.com/uglygus/sambactl/internal/system"
)

var setupSkipUpgrade bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install Samba packages",
	Long: `Update the package index and install the Samba packages.

Already installed packages are left alone. Use --skip-upgrade to avoid
a full system upgrade before installing.

Examples:
  # Update, upgrade, and install
  sambactl setup

  # Install without upgrading existing packages
  sambactl setup --skip-upgrade`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&setupSkipUpgrade, "skip-upgrade", false, "Skip the system upgrade step")
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	apt := system.NewAptManager(privexec.Detect())
	ctx := cmd.Context()

	if err := apt.Update(ctx); err != nil {
		return fmt.Errorf("failed to update package index: %w", err)
	}

	if !setupSkipUpgrade {
		if err := apt.Upgrade(ctx); err != nil {
			return fmt.Errorf("failed to upgrade packages: %w", err)
		}
	}

	for _, pkg := range cfg.Samba.Packages {
		if err := apt.EnsureInstalled(ctx, pkg); err != nil {
			return fmt.Errorf("failed to install %s: %w", pkg, err)
		}
	}

	fmt.Fprintln(os.Stdout, "Samba packages installed")
	return nil
}
