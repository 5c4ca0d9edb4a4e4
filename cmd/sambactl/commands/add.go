package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uglygus/sambactl/internal/cli/prompt"
	"github.com/uglygus/sambactl/internal/registry"
)

var (
	addName  string
	addPath  string
	addOwner string
	addGuest bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a network share",
	Long: `Add a share section to the Samba configuration file.

The current configuration is backed up before the change, and the Samba
service is restarted afterwards. Missing flags are prompted for
interactively.

Examples:
  # Add a share owned by a user (creates the account if missing)
  sambactl add --name media --path /srv/media --user pi

  # Add a guest share, no account required
  sambactl add --name public --path /srv/public --guest

  # Prompt for everything
  sambactl add`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "Share name (required)")
	addCmd.Flags().StringVar(&addPath, "path", "", "Directory to share (required)")
	addCmd.Flags().StringVar(&addOwner, "user", "", "Owning account for an authenticated share")
	addCmd.Flags().BoolVar(&addGuest, "guest", false, "Allow guest access without an account")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req, err := resolveAddRequest()
	if err != nil {
		return handleAbort(err)
	}

	reg, exec := buildRegistry(cfg)
	if err := reg.Add(cmd.Context(), req); err != nil {
		return fmt.Errorf("failed to add share: %w", err)
	}

	if err := restartService(cmd, cfg, exec); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Share '%s' added successfully\n", req.Name)
	return nil
}

// resolveAddRequest fills any missing add parameters interactively.
func resolveAddRequest() (registry.AddRequest, error) {
	req := registry.AddRequest{
		Name:  addName,
		Path:  addPath,
		Owner: addOwner,
		Guest: addGuest,
	}

	var err error
	if req.Name == "" {
		req.Name, err = prompt.InputRequired("Share name")
		if err != nil {
			return req, err
		}
	}

	if req.Path == "" {
		req.Path, err = prompt.InputRequired("Directory to share")
		if err != nil {
			return req, err
		}
	}

	if !req.Guest && req.Owner == "" {
		req.Guest, err = prompt.Confirm("Allow guest access", false)
		if err != nil {
			return req, err
		}
		if !req.Guest {
			req.Owner, err = prompt.InputRequired("Owning account")
			if err != nil {
				return req, err
			}
		}
	}

	return req, nil
}

// handleAbort converts a prompt abort into a quiet error.
func handleAbort(err error) error {
	if prompt.IsAborted(err) {
		return fmt.Errorf("cancelled")
	}
	return err
}
