package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uglygus/sambactl/internal/cli/output"
	"github.com/uglygus/sambactl/internal/registry"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List network shares",
	Long: `List the share sections defined in the Samba configuration file.

The [global] section is never listed. A missing configuration file
yields an empty list.

Examples:
  # List shares as table
  sambactl list

  # List as JSON
  sambactl list -o json

  # List as YAML
  sambactl list -o yaml`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format (table|json|yaml)")
}

// ShareList is a list of shares for table rendering.
type ShareList []registry.Share

// Headers implements TableRenderer.
func (sl ShareList) Headers() []string {
	return []string{"NAME", "PATH"}
}

// Rows implements TableRenderer.
func (sl ShareList) Rows() [][]string {
	rows := make([][]string, 0, len(sl))
	for _, s := range sl {
		rows = append(rows, []string{s.Name, s.Path})
	}
	return rows
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(listOutput)
	if err != nil {
		return err
	}

	reg, _ := buildRegistry(cfg)
	shares, err := reg.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list shares: %w", err)
	}
	if shares == nil {
		shares = []registry.Share{}
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, shares)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, shares)
	default:
		if len(shares) == 0 {
			fmt.Println("No shares found.")
			return nil
		}
		return output.PrintTable(os.Stdout, ShareList(shares))
	}
}
