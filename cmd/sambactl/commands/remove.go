package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uglygus/sambactl/internal/cli/prompt"
)

var removeForce bool

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a network share",
	Long: `Remove a share section from the Samba configuration file.

The current configuration is backed up before the change, and the Samba
service is restarted afterwards. The shared directory and its contents
are left in place. You will be prompted for confirmation unless --force
is specified.

Examples:
  # Remove a share with confirmation
  sambactl remove media

  # Remove without confirmation
  sambactl remove media --force`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeForce, "force", "f", false, "Skip confirmation prompt")
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ok, err := prompt.ConfirmWithForce(fmt.Sprintf("Remove share '%s'", name), removeForce)
	if err != nil {
		return handleAbort(err)
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}

	reg, exec := buildRegistry(cfg)
	found, err := reg.Remove(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("failed to remove share: %w", err)
	}

	if err := restartService(cmd, cfg, exec); err != nil {
		return err
	}

	if !found {
		fmt.Fprintf(os.Stdout, "Share '%s' was not present\n", name)
		return nil
	}

	fmt.Fprintf(os.Stdout, "Share '%s' removed successfully\n", name)
	return nil
}
