package usecase

import (
	"context"

	"github.com/aalvaropc/orchard/internal/domain"
	"github.com/aalvaropc/orchard/internal/ports"
	"github.com/aalvaropc/orchard/internal/usecase/criteria"
)

type ValidateInventory struct {
	inventories ports.InventoryLoader
}

func NewValidateInventory(il ports.InventoryLoader) *ValidateInventory {
	return &ValidateInventory{inventories: il}
}

// Execute checks that the inventory loads and that c compiles, without filtering.
func (uc *ValidateInventory) Execute(ctx context.Context, inventoryPath string, c domain.Criteria) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := uc.inventories.LoadInventory(inventoryPath); err != nil {
		return err
	}

	_, err := criteria.Build(c)
	return err
}
