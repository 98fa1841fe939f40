package interfaces

import (
	"context"

	"gestao_facil/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for CatalogEntry.
//
// Convention: lookups return a zero-value entry (empty ID) when the id is
// absent; use cases translate that into their not-found sentinel.

type ICatalogRepository interface {
	Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error)
	GetByID(ctx context.Context, id string) (entities.CatalogEntry, error)
	Update(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListByType(ctx context.Context, t entities.CatalogType) ([]entities.CatalogEntry, error)
}
