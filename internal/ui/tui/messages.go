package tui

import "github.com/aalvaropc/orchard/internal/domain"

type inventoryLoadedMsg struct {
	path string
	inv  domain.Inventory
	err  error
}
