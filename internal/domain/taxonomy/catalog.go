package taxonomy

// Catalog is an immutable snapshot of the taxonomy tree, used only for
// membership queries. Safe for concurrent reads; replace wholesale to
// pick up taxonomy edits.
type Catalog struct {
	identities      map[string]Node
	categories      map[string]Node
	subcategories   map[string]Node
	subsubcategories map[string]Node
}

// NewCatalog builds a catalog from a flat node list. Nodes with an
// invalid level are ignored.
func NewCatalog(nodes []Node) *Catalog {
	c := &Catalog{
		identities:       make(map[string]Node),
		categories:       make(map[string]Node),
		subcategories:    make(map[string]Node),
		subsubcategories: make(map[string]Node),
	}
	for _, n := range nodes {
		switch n.Level {
		case LevelIdentity:
			c.identities[n.ID] = n
		case LevelCategory:
			c.categories[n.ID] = n
		case LevelSubcategory:
			c.subcategories[n.ID] = n
		case LevelSubsubcategory:
			c.subsubcategories[n.ID] = n
		}
	}
	return c
}

// BelongsTo reports whether the node with the given id at the given level
// is reachable from any of the supplied identities. An unknown node or a
// broken ancestry chain yields false: the caller treats the node as not
// meaningfully associated rather than failing the request.
func (c *Catalog) BelongsTo(nodeID string, level Level, identityIDs Set) bool {
	switch level {
	case LevelIdentity:
		_, known := c.identities[nodeID]
		return known && identityIDs.Has(nodeID)
	case LevelCategory:
		return c.categoryReachable(nodeID, identityIDs)
	case LevelSubcategory:
		sub, ok := c.subcategories[nodeID]
		if !ok {
			return false
		}
		return c.categoryReachable(sub.ParentID, identityIDs)
	case LevelSubsubcategory:
		leaf, ok := c.subsubcategories[nodeID]
		if !ok {
			return false
		}
		sub, ok := c.subcategories[leaf.ParentID]
		if !ok {
			return false
		}
		return c.categoryReachable(sub.ParentID, identityIDs)
	default:
		return false
	}
}

// categoryReachable walks the final hop: a category is reachable when it
// is identity-agnostic or owned by one of the supplied identities.
func (c *Catalog) categoryReachable(categoryID string, identityIDs Set) bool {
	cat, ok := c.categories[categoryID]
	if !ok {
		return false
	}
	if cat.IdentityID == "" {
		return true
	}
	return identityIDs.Has(cat.IdentityID)
}

// Node looks up a node by id at the given level.
func (c *Catalog) Node(nodeID string, level Level) (Node, bool) {
	var n Node
	var ok bool
	switch level {
	case LevelIdentity:
		n, ok = c.identities[nodeID]
	case LevelCategory:
		n, ok = c.categories[nodeID]
	case LevelSubcategory:
		n, ok = c.subcategories[nodeID]
	case LevelSubsubcategory:
		n, ok = c.subsubcategories[nodeID]
	}
	return n, ok
}

// Size returns the total number of nodes across all levels.
func (c *Catalog) Size() int {
	return len(c.identities) + len(c.categories) + len(c.subcategories) + len(c.subsubcategories)
}
