package domain

// Inventory is a named, ordered basket of apples. Order and duplicates are kept.
type Inventory struct {
	Name   string
	Apples []Apple
}

// InventoryRef is a lightweight reference to an inventory file on disk.
type InventoryRef struct {
	Name string
	Path string
}

// Criteria describes a predicate over apples declaratively.
// Every set field must hold for an apple to match. A zero Criteria matches all apples.
type Criteria struct {
	Color       *Color
	HeavierThan *int // size > n
	LighterThan *int // size < n

	// Where is a JSONPath filter expression evaluated against
	// {"color": "RED", "size": 170}, e.g. `@.size > 150`.
	Where string

	// Invert keeps the apples that do NOT match.
	Invert bool
}

// IsZero reports whether no constraint is set.
func (c Criteria) IsZero() bool {
	return c.Color == nil && c.HeavierThan == nil && c.LighterThan == nil && c.Where == ""
}

// Merge returns c with every field set in override applied on top.
// Invert can only be switched on here; callers that need to clear it assign
// the field directly.
func (c Criteria) Merge(override Criteria) Criteria {
	out := c
	if override.Color != nil {
		out.Color = override.Color
	}
	if override.HeavierThan != nil {
		out.HeavierThan = override.HeavierThan
	}
	if override.LighterThan != nil {
		out.LighterThan = override.LighterThan
	}
	if override.Where != "" {
		out.Where = override.Where
	}
	if override.Invert {
		out.Invert = true
	}
	return out
}

// Selection is the outcome of filtering one inventory.
type Selection struct {
	Inventory string
	Path      string
	Criteria  Criteria

	// Total is the number of apples in the inventory before filtering.
	Total  int
	Apples []Apple
}
