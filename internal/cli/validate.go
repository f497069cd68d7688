package cli

import (
	"fmt"

	"github.com/aalvaropc/orchard/internal/usecase"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var workspace string
	var inventory string
	var crit criteriaFlags

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate an inventory and criteria (no filtering)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			inventoryPath, err := resolveInventoryPath(ws, inventory)
			if err != nil {
				return err
			}

			criteria, err := crit.resolve(cmd, ws.cfg)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateInventory(ws.inventories)
			if err := uc.Execute(cmd.Context(), inventoryPath, criteria); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&inventory, "inventory", "i", "", "Inventory name or path (optional; defaults to workspace default inventory)")
	crit.bind(c)
	return c
}
