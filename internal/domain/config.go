package domain

import "path/filepath"

// ConfigFileName marks the root of an orchard workspace.
const ConfigFileName = "orchard.yaml"

// StateDir holds per-workspace runtime state (logs). It is git-ignored.
const StateDir = ".orchard"

// Config represents the orchard configuration loaded from orchard.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Logging  LoggingConfig

	// Presets are named criteria selectable with --preset.
	Presets map[string]Criteria
}

type DefaultsConfig struct {
	Inventory string
	Format    string

	// HeavyThreshold is the size used by the "heavy" toggle in the browser.
	HeavyThreshold int
}

type PathsConfig struct {
	InventoriesDir string
	LogsDir        string
}

type LoggingConfig struct {
	// Level is one of debug, info, warn, error. --debug overrides it.
	Level string
	File  string
}

// DefaultConfig provides sane defaults if orchard.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Inventory:      "basket",
			Format:         "pretty",
			HeavyThreshold: 150,
		},
		Paths: PathsConfig{
			InventoriesDir: "inventories",
			LogsDir:        filepath.Join(StateDir, "logs"),
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "orchard.log",
		},
		Presets: map[string]Criteria{},
	}
}

// LogPath is where the workspace rooted at root writes its log.
func (c Config) LogPath(root string) string {
	return filepath.Join(root, c.Paths.LogsDir, c.Logging.File)
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
