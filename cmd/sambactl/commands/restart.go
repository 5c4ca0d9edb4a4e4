package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uglygus/sambactl/internal/privexec"
)

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the Samba service",
	Long: `Restart the configured Samba service.

Share changes restart the service automatically; this command is for
applying manual edits to the configuration file.`,
	RunE: runRestart,
}

func runRestart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := restartService(cmd, cfg, privexec.Detect()); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Service '%s' restarted\n", cfg.Samba.Service)
	return nil
}
