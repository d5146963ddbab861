package interfaces

import (
	"context"

	"setup-cli/pkg/models"
)

// CatalogLoader reads the default and test value sets
type CatalogLoader interface {
	Load(path string) (*models.Catalog, error)
}

// ValueResolver collects operator answers and merges them over the defaults
type ValueResolver interface {
	Resolve(ctx context.Context, defaults models.ValueSet) (models.ValueSet, error)
}
