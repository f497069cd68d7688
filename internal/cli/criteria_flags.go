package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/orchard/internal/domain"
)

type criteriaFlags struct {
	color       string
	heavierThan int
	lighterThan int
	where       string
	preset      string
	invert      bool
}

func (f *criteriaFlags) bind(c *cobra.Command) {
	c.Flags().StringVar(&f.color, "color", "", "Keep apples of this color: red|green")
	c.Flags().IntVar(&f.heavierThan, "heavier-than", 0, "Keep apples strictly heavier than N grams")
	c.Flags().IntVar(&f.lighterThan, "lighter-than", 0, "Keep apples strictly lighter than N grams")
	c.Flags().StringVar(&f.where, "where", "", `JSONPath filter expression, e.g. '@.color == "RED" && @.size > 150'`)
	c.Flags().StringVarP(&f.preset, "preset", "p", "", "Named criteria from orchard.yaml (flags override preset fields)")
	c.Flags().BoolVar(&f.invert, "invert", false, "Keep the apples that do NOT match")
}

// resolve builds the criteria from the preset (if any) with explicitly set flags on top.
func (f *criteriaFlags) resolve(c *cobra.Command, cfg domain.Config) (domain.Criteria, error) {
	var base domain.Criteria
	if name := strings.TrimSpace(f.preset); name != "" {
		p, ok := cfg.Presets[name]
		if !ok {
			return domain.Criteria{}, &domain.OpError{
				Op:   "cli.preset",
				Kind: domain.KindNotFound,
				Err:  fmt.Errorf("preset %q: %w", name, domain.ErrNotFound),
			}
		}
		base = p
	}

	var override domain.Criteria
	if strings.TrimSpace(f.color) != "" {
		color, err := domain.ParseColor(f.color)
		if err != nil {
			return domain.Criteria{}, err
		}
		override.Color = &color
	}
	if c.Flags().Changed("heavier-than") {
		v := f.heavierThan
		override.HeavierThan = &v
	}
	if c.Flags().Changed("lighter-than") {
		v := f.lighterThan
		override.LighterThan = &v
	}
	override.Where = strings.TrimSpace(f.where)

	out := base.Merge(override)
	if c.Flags().Changed("invert") {
		out.Invert = f.invert
	}
	return out, nil
}

// describeCriteria renders criteria the way they would be typed on the command line.
func describeCriteria(c domain.Criteria) string {
	var parts []string
	if c.Color != nil {
		parts = append(parts, "color="+string(*c.Color))
	}
	if c.HeavierThan != nil {
		parts = append(parts, fmt.Sprintf("heavier_than=%d", *c.HeavierThan))
	}
	if c.LighterThan != nil {
		parts = append(parts, fmt.Sprintf("lighter_than=%d", *c.LighterThan))
	}
	if c.Where != "" {
		parts = append(parts, fmt.Sprintf("where=%q", c.Where))
	}
	if len(parts) == 0 {
		parts = append(parts, "(all)")
	}
	if c.Invert {
		parts = append(parts, "invert")
	}
	return strings.Join(parts, " ")
}
