package usecase

import (
	"context"
	"errors"
	"strings"

	"gestao_facil/internal/domain/entities"
	"gestao_facil/internal/domain/pricing"
	"gestao_facil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// IComposerUseCase turns a catalog entry into a standalone budget line.
//
// The line is a snapshot: name, cost and margin are copied at composition
// time and never re-read from the catalog, so historical budgets keep their
// prices when the catalog changes later.

type IComposerUseCase interface {
	Compose(ctx context.Context, t entities.CatalogType, entryID string, quantity int, marginOverride *float64) (entities.BudgetLine, error)
}

type ComposerUseCase struct {
	catalogRepo interfaces.ICatalogRepository
}

var _ IComposerUseCase = (*ComposerUseCase)(nil)

func NewComposerUseCase(catalogRepo interfaces.ICatalogRepository) *ComposerUseCase {
	return &ComposerUseCase{catalogRepo: catalogRepo}
}

func (u *ComposerUseCase) Compose(ctx context.Context, t entities.CatalogType, entryID string, quantity int, marginOverride *float64) (entities.BudgetLine, error) {
	if !t.Valid() {
		return entities.BudgetLine{}, ErrInvalidCatalogType
	}
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return entities.BudgetLine{}, ErrInvalidCatalogID
	}
	if quantity < 1 {
		return entities.BudgetLine{}, ErrInvalidQuantity
	}

	e, err := u.catalogRepo.GetByID(ctx, entryID)
	if err != nil {
		return entities.BudgetLine{}, err
	}
	if e.ID == "" || e.Type != t {
		return entities.BudgetLine{}, ErrCatalogEntryNotFound
	}

	margin := e.MarginPercent
	if marginOverride != nil {
		margin = *marginOverride
	}

	line := entities.BudgetLine{
		ID:            uuid.NewString(),
		SourceType:    e.Type,
		SourceItemID:  e.ID,
		Name:          e.Name,
		Quantity:      quantity,
		UnitCost:      e.Cost,
		MarginPercent: margin,
	}
	return pricing.RecomputeLine(line), nil
}
