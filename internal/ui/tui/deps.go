package tui

import (
	"log/slog"

	"github.com/aalvaropc/orchard/internal/ports"
)

type Deps struct {
	Inventories   ports.InventoryLoader
	InventoryPath string

	// HeavyThreshold backs the "heavy" toggle (size > threshold).
	HeavyThreshold int

	Logger *slog.Logger

	// Debug shows LogPath in the help line.
	Debug   bool
	LogPath string
}
