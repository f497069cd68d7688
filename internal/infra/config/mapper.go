package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/orchard/internal/domain"
	"github.com/aalvaropc/orchard/internal/infra/logger"
)

var validFormats = map[string]bool{"pretty": true, "json": true, "yaml": true}

// MapConfig applies the parsed orchard.yaml on top of domain.DefaultConfig.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	d := yc.Orchard.Defaults

	if v := strings.TrimSpace(d.Inventory); v != "" {
		cfg.Defaults.Inventory = v
	}
	if v := strings.ToLower(strings.TrimSpace(d.Format)); v != "" {
		if !validFormats[v] {
			return domain.Config{}, invalidField(path, "defaults.format", fmt.Sprintf("unsupported format %q", d.Format))
		}
		cfg.Defaults.Format = v
	}
	if d.HeavyThreshold != nil {
		cfg.Defaults.HeavyThreshold = *d.HeavyThreshold
	}
	if v := strings.TrimSpace(yc.Orchard.Paths.InventoriesDir); v != "" {
		cfg.Paths.InventoriesDir = v
	}
	if v := strings.TrimSpace(yc.Orchard.Paths.LogsDir); v != "" {
		cfg.Paths.LogsDir = v
	}

	lg := yc.Orchard.Logging
	if v := strings.TrimSpace(lg.Level); v != "" {
		level, err := logger.ParseLevel(v)
		if err != nil {
			return domain.Config{}, invalidField(path, "logging.level", err.Error())
		}
		cfg.Logging.Level = strings.ToLower(level.String())
	}
	if v := strings.TrimSpace(lg.File); v != "" {
		if filepath.Base(v) != v {
			return domain.Config{}, invalidField(path, "logging.file", "must be a file name, use paths.logs_dir for the directory")
		}
		cfg.Logging.File = v
	}

	names := make([]string, 0, len(yc.Orchard.Presets))
	for name := range yc.Orchard.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c, err := MapCriteria(path, "presets."+name, yc.Orchard.Presets[name])
		if err != nil {
			return domain.Config{}, err
		}
		cfg.Presets[name] = c
	}

	return cfg, nil
}

// MapCriteria converts a criteria block; field is used as the error prefix.
func MapCriteria(path, field string, y YAMLCriteria) (domain.Criteria, error) {
	c := domain.Criteria{
		HeavierThan: y.HeavierThan,
		LighterThan: y.LighterThan,
		Where:       strings.TrimSpace(y.Where),
		Invert:      y.Invert,
	}
	if strings.TrimSpace(y.Color) != "" {
		color, err := domain.ParseColor(y.Color)
		if err != nil {
			return domain.Criteria{}, invalidField(path, field+".color", fmt.Sprintf("unknown color %q", y.Color))
		}
		c.Color = &color
	}
	return c, nil
}

// MapInventory validates every apple. A blank name falls back to the file name.
func MapInventory(path string, yi YAMLInventory) (domain.Inventory, error) {
	name := strings.TrimSpace(yi.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	inv := domain.Inventory{
		Name:   name,
		Apples: make([]domain.Apple, 0, len(yi.Apples)),
	}

	for i, a := range yi.Apples {
		fieldPrefix := fmt.Sprintf("apples[%d]", i)

		if strings.TrimSpace(a.Color) == "" {
			return domain.Inventory{}, invalidField(path, fieldPrefix+".color", "color is required")
		}
		color, err := domain.ParseColor(a.Color)
		if err != nil {
			return domain.Inventory{}, invalidField(path, fieldPrefix+".color", fmt.Sprintf("unknown color %q", a.Color))
		}
		if a.Size == nil {
			return domain.Inventory{}, invalidField(path, fieldPrefix+".size", "size is required")
		}

		inv.Apples = append(inv.Apples, domain.NewApple(color, *a.Size))
	}

	return inv, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
