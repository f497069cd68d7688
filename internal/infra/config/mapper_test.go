package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/orchard/internal/domain"
)

func TestMapConfigEmptyUsesDefaults(t *testing.T) {
	cfg, err := MapConfig("orchard.yaml", YAMLConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := domain.DefaultConfig()
	if cfg.Defaults != def.Defaults || cfg.Paths != def.Paths {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Presets == nil {
		t.Fatalf("expected non-nil presets map")
	}
}

func TestMapConfigRejectsUnknownFormat(t *testing.T) {
	yc := YAMLConfig{Orchard: YAMLOrchard{Defaults: YAMLDefaults{Format: "xml"}}}
	_, err := MapConfig("orchard.yaml", yc)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "defaults.format") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestMapConfigRejectsBadLogging(t *testing.T) {
	cases := []struct {
		logging YAMLLogging
		field   string
	}{
		{YAMLLogging{Level: "chatty"}, "logging.level"},
		{YAMLLogging{File: "logs/orchard.log"}, "logging.file"},
	}
	for _, c := range cases {
		_, err := MapConfig("orchard.yaml", YAMLConfig{Orchard: YAMLOrchard{Logging: c.logging}})
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("%+v: expected KindInvalidConfig, got %v", c.logging, err)
		}
		if !strings.Contains(err.Error(), c.field) {
			t.Fatalf("%+v: expected %s in error, got %v", c.logging, c.field, err)
		}
	}
}

func TestMapInventoryRequiresColorAndSize(t *testing.T) {
	size := 120
	yi := YAMLInventory{
		Name:   "basket",
		Apples: []YAMLApple{{Size: &size}},
	}

	_, err := MapInventory("basket.yaml", yi)
	if err == nil || !strings.Contains(err.Error(), "apples[0].color") {
		t.Fatalf("expected color error, got %v", err)
	}

	yi.Apples[0] = YAMLApple{Color: "red"}
	_, err = MapInventory("basket.yaml", yi)
	if err == nil || !strings.Contains(err.Error(), "apples[0].size") {
		t.Fatalf("expected size error, got %v", err)
	}
}

func TestMapInventoryNameFallsBackToFile(t *testing.T) {
	inv, err := MapInventory("/ws/inventories/crate.yml", YAMLInventory{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Name != "crate" {
		t.Fatalf("expected crate, got %q", inv.Name)
	}
	if inv.Apples == nil || len(inv.Apples) != 0 {
		t.Fatalf("expected empty non-nil apples, got %v", inv.Apples)
	}
}

func TestMapCriteria(t *testing.T) {
	n := 150
	c, err := MapCriteria("orchard.yaml", "presets.x", YAMLCriteria{Color: " green ", HeavierThan: &n, Where: "  @.size > 1 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Color == nil || *c.Color != domain.ColorGreen {
		t.Fatalf("expected GREEN, got %v", c.Color)
	}
	if c.HeavierThan == nil || *c.HeavierThan != 150 {
		t.Fatalf("expected heavier_than 150")
	}
	if c.Where != "@.size > 1" {
		t.Fatalf("expected trimmed where, got %q", c.Where)
	}
}
