package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdLoadInventory(d Deps) tea.Cmd {
	return func() tea.Msg {
		if d.Inventories == nil {
			return inventoryLoadedMsg{path: d.InventoryPath, err: errors.New("no inventory loader configured")}
		}
		inv, err := d.Inventories.LoadInventory(d.InventoryPath)
		return inventoryLoadedMsg{path: d.InventoryPath, inv: inv, err: err}
	}
}
