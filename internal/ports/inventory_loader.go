package ports

import "github.com/aalvaropc/orchard/internal/domain"

// InventoryLoader loads apple inventories from a source (e.g., filesystem).
type InventoryLoader interface {
	LoadInventory(path string) (domain.Inventory, error)
	ListInventories(root string) ([]domain.InventoryRef, error)
}
