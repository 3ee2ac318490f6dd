package gamedata

// ItemRegistry holds loaded item definitions keyed by name.
type ItemRegistry struct {
	items map[string]*ItemDef
	all   []ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		items: make(map[string]*ItemDef),
		all:   items,
	}
	for i := range items {
		registry.items[items[i].Name] = &items[i]
	}
	return registry
}

// GetByName returns the item definition with the given name, or nil if not found.
func (r *ItemRegistry) GetByName(name string) *ItemDef {
	return r.items[name]
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.all
}

// Count returns the number of distinct items in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.items)
}
