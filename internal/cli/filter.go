package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/orchard/internal/infra/logger"
	"github.com/aalvaropc/orchard/internal/usecase"
)

func filterCmd() *cobra.Command {
	var workspace string
	var inventory string
	var format string
	var crit criteriaFlags

	c := &cobra.Command{
		Use:   "filter",
		Short: "Select apples from an inventory",
		Example: `  orchard filter --color red
  orchard filter -i basket --color red --heavier-than 150
  orchard filter --where '@.size > 150' --format json
  orchard filter --preset heavy-red --invert`,
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

			if format == "" {
				format = ws.cfg.Defaults.Format
			}

			uc := usecase.NewFilterInventory(ws.inventories, usecase.WithLogger(logger.L()))
			sel, err := uc.Execute(cmd.Context(), inventoryPath, criteria)
			if err != nil {
				return err
			}

			return printSelection(cmd.OutOrStdout(), sel, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&inventory, "inventory", "i", "", "Inventory name or path (optional; defaults to workspace default inventory)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json|yaml (default from orchard.yaml)")
	crit.bind(c)
	return c
}
