package menu

// Node represents a menu entry definition within the registry.
type Node struct {
	ID     string
	Item   Item
	Action Action
}

// Registry exposes lookup utilities for menu definitions.
type Registry struct {
	order []string
	nodes map[string]*Node
}

// BuildRegistry constructs the registry from the context items and handlers.
func BuildRegistry() *Registry {
	handlers := ActionHandlers()
	items := ContextItems()
	r := &Registry{
		order: make([]string, 0, len(items)),
		nodes: make(map[string]*Node, len(items)),
	}
	for _, item := range items {
		r.order = append(r.order, item.ID)
		r.nodes[item.ID] = &Node{ID: item.ID, Item: item, Action: handlers[item.ID]}
	}
	return r
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// Items returns the registered items in menu order.
func (r *Registry) Items() []Item {
	items := make([]Item, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.nodes[id].Item)
	}
	return items
}

// ByHint resolves an accelerator key to its node.
func (r *Registry) ByHint(hint string) (*Node, bool) {
	for _, id := range r.order {
		if node := r.nodes[id]; node.Item.Hint == hint {
			return node, true
		}
	}
	return nil, false
}
