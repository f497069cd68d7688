package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func inventoriesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "inventories",
		Short: "Manage inventories in a workspace",
	}

	c.AddCommand(inventoriesListCmd())
	return c
}

func inventoriesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inventories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.inventories.ListInventories(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no inventories found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n", ws.root)
			fmt.Fprintf(out, "Default:   %s\n\n", ws.cfg.Defaults.Inventory)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
