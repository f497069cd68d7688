// Package criteria builds filter predicates over apples.
//
// The by-color and by-color-and-size selections are plain predicate constructors
// combined with filter.And; there is no per-attribute filtering loop.
package criteria

import (
	"github.com/aalvaropc/orchard/internal/domain"
	"github.com/aalvaropc/orchard/internal/filter"
)

func ColorIs(c domain.Color) filter.Predicate[domain.Apple] {
	return func(a domain.Apple) bool {
		return a.Color == c
	}
}

// HeavierThan matches apples strictly heavier than grams.
func HeavierThan(grams int) filter.Predicate[domain.Apple] {
	return func(a domain.Apple) bool {
		return a.Size > grams
	}
}

// LighterThan matches apples strictly lighter than grams.
func LighterThan(grams int) filter.Predicate[domain.Apple] {
	return func(a domain.Apple) bool {
		return a.Size < grams
	}
}

func ColorAndHeavierThan(c domain.Color, grams int) filter.Predicate[domain.Apple] {
	return filter.And(ColorIs(c), HeavierThan(grams))
}

// Build ANDs every constraint set in c. Invert is not applied here; callers
// choose between filtering and discarding.
func Build(c domain.Criteria) (filter.PredicateE[domain.Apple], error) {
	var simple []filter.Predicate[domain.Apple]

	if c.Color != nil {
		if !c.Color.Valid() {
			return nil, domain.InvalidArgument("criteria.build", "unknown color %q", string(*c.Color))
		}
		simple = append(simple, ColorIs(*c.Color))
	}
	if c.HeavierThan != nil {
		simple = append(simple, HeavierThan(*c.HeavierThan))
	}
	if c.LighterThan != nil {
		simple = append(simple, LighterThan(*c.LighterThan))
	}

	preds := []filter.PredicateE[domain.Apple]{filter.Lift(filter.And(simple...))}

	if c.Where != "" {
		w, err := Where(c.Where)
		if err != nil {
			return nil, err
		}
		preds = append(preds, w)
	}

	return filter.AndE(preds...), nil
}
