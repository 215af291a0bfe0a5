// Package taxonomy loads the taxonomy catalog snapshot from the store.
package taxonomy

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meetgrid/affinity/internal/domain"
	domtax "github.com/meetgrid/affinity/internal/domain/taxonomy"
)

// SnapshotKey is where the platform publishes the canonical taxonomy tree.
var SnapshotKey = domain.KeyPrefix + "taxonomy:snapshot"

// store is the consumer interface for the snapshot loader (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Repo reads taxonomy snapshots.
type Repo struct {
	store store
}

// New creates a taxonomy repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// snapshotDTO mirrors the published JSON snapshot shape.
type snapshotDTO struct {
	Identities []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"identities"`
	Categories []struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		IdentityID string `json:"identity_id"`
	} `json:"categories"`
	Subcategories []struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		CategoryID string `json:"category_id"`
	} `json:"subcategories"`
	Subsubcategories []struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		SubcategoryID string `json:"subcategory_id"`
	} `json:"subsubcategories"`
}

// LoadSnapshot fetches and parses the taxonomy snapshot into a catalog.
func (r *Repo) LoadSnapshot(ctx context.Context) (*domtax.Catalog, error) {
	data, err := r.store.Get(ctx, SnapshotKey)
	if err != nil {
		return nil, fmt.Errorf("get taxonomy snapshot: %w", err)
	}

	var dto snapshotDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parse taxonomy snapshot: %w", err)
	}

	nodes := make([]domtax.Node, 0,
		len(dto.Identities)+len(dto.Categories)+len(dto.Subcategories)+len(dto.Subsubcategories))

	for _, n := range dto.Identities {
		nodes = append(nodes, domtax.Node{
			ID:    n.ID,
			Name:  n.Name,
			Level: domtax.LevelIdentity,
			Type:  domtax.IdentityType(n.Type),
		})
	}
	for _, n := range dto.Categories {
		nodes = append(nodes, domtax.Node{
			ID:         n.ID,
			Name:       n.Name,
			Level:      domtax.LevelCategory,
			IdentityID: n.IdentityID,
		})
	}
	for _, n := range dto.Subcategories {
		nodes = append(nodes, domtax.Node{
			ID:       n.ID,
			Name:     n.Name,
			Level:    domtax.LevelSubcategory,
			ParentID: n.CategoryID,
		})
	}
	for _, n := range dto.Subsubcategories {
		nodes = append(nodes, domtax.Node{
			ID:       n.ID,
			Name:     n.Name,
			Level:    domtax.LevelSubsubcategory,
			ParentID: n.SubcategoryID,
		})
	}

	return domtax.NewCatalog(nodes), nil
}
