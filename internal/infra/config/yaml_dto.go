package config

type YAMLConfig struct {
	Orchard YAMLOrchard `yaml:"orchard"`
}

type YAMLOrchard struct {
	Defaults YAMLDefaults            `yaml:"defaults"`
	Paths    YAMLPaths               `yaml:"paths"`
	Logging  YAMLLogging             `yaml:"logging"`
	Presets  map[string]YAMLCriteria `yaml:"presets"`
}

type YAMLDefaults struct {
	Inventory      string `yaml:"inventory"`
	Format         string `yaml:"format"`
	HeavyThreshold *int   `yaml:"heavy_threshold"`
}

type YAMLPaths struct {
	InventoriesDir string `yaml:"inventories_dir"`
	LogsDir        string `yaml:"logs_dir"`
}

type YAMLLogging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type YAMLCriteria struct {
	Color       string `yaml:"color"`
	HeavierThan *int   `yaml:"heavier_than"`
	LighterThan *int   `yaml:"lighter_than"`
	Where       string `yaml:"where"`
	Invert      bool   `yaml:"invert"`
}

type YAMLInventory struct {
	Name   string      `yaml:"name"`
	Apples []YAMLApple `yaml:"apples"`
}

type YAMLApple struct {
	Color string `yaml:"color"`
	Size  *int   `yaml:"size"`
}
