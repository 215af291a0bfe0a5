package taxonomy

// IdentityType distinguishes individual and company identities.
type IdentityType string

// Identity types.
const (
	IdentityIndividual IdentityType = "individual"
	IdentityCompany    IdentityType = "company"
)

// Node is a single taxonomy tree entry. Ancestry is fixed at creation;
// nodes are never reparented for the life of a snapshot.
type Node struct {
	ID    string
	Name  string
	Level Level

	// ParentID links to the node one level up: categories for
	// subcategories, subcategories for subsubcategories. Empty for
	// identities and categories.
	ParentID string

	// IdentityID is the owning identity for categories. Empty means the
	// category is identity-agnostic and reachable from any identity.
	IdentityID string

	// Type is set for identity nodes only.
	Type IdentityType
}
