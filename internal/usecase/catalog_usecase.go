package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_facil/internal/domain/entities"
	"gestao_facil/internal/domain/pricing"
	"gestao_facil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCatalogEntryNotFound = errors.New("catalog entry not found")
	ErrInvalidCatalogType   = errors.New("invalid catalog type")
	ErrInvalidCatalogID     = errors.New("invalid catalog entry id")
	ErrInvalidCatalogName   = errors.New("invalid catalog entry name")
)

// CatalogInput carries the caller-settable fields of a new catalog entry.
// ID, timestamps and FinalPrice are assigned by the use case.
type CatalogInput struct {
	Name          string
	Description   string
	Cost          float64
	MarginPercent float64
}

// CatalogUpdate is a partial update; nil fields are left untouched. When
// Cost or MarginPercent is present the final price is recomputed from the
// effective post-merge values.
type CatalogUpdate struct {
	Name          *string
	Description   *string
	Cost          *float64
	MarginPercent *float64
}

// ICatalogUseCase exposes the priced-catalog operations shared by the three
// catalogs (product / labor / transport).

type ICatalogUseCase interface {
	Add(ctx context.Context, t entities.CatalogType, in CatalogInput) (entities.CatalogEntry, error)
	Update(ctx context.Context, id string, upd CatalogUpdate) (entities.CatalogEntry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, t entities.CatalogType) ([]entities.CatalogEntry, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) Add(ctx context.Context, t entities.CatalogType, in CatalogInput) (entities.CatalogEntry, error) {
	if !t.Valid() {
		return entities.CatalogEntry{}, ErrInvalidCatalogType
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.CatalogEntry{}, ErrInvalidCatalogName
	}

	now := time.Now().UTC()
	e := entities.CatalogEntry{
		ID:            uuid.NewString(),
		Type:          t,
		Name:          name,
		Description:   strings.TrimSpace(in.Description),
		Cost:          in.Cost,
		MarginPercent: in.MarginPercent,
		FinalPrice:    pricing.FinalPrice(in.Cost, in.MarginPercent),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, e)
}

func (u *CatalogUseCase) Update(ctx context.Context, id string, upd CatalogUpdate) (entities.CatalogEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogEntry{}, ErrInvalidCatalogID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if e.ID == "" {
		return entities.CatalogEntry{}, ErrCatalogEntryNotFound
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return entities.CatalogEntry{}, ErrInvalidCatalogName
		}
		e.Name = name
	}
	if upd.Description != nil {
		e.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Cost != nil {
		e.Cost = *upd.Cost
	}
	if upd.MarginPercent != nil {
		e.MarginPercent = *upd.MarginPercent
	}
	// Recompute from the effective values: either field may arrive alone.
	if upd.Cost != nil || upd.MarginPercent != nil {
		e.FinalPrice = pricing.FinalPrice(e.Cost, e.MarginPercent)
	}
	e.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if updated.ID == "" {
		return entities.CatalogEntry{}, ErrCatalogEntryNotFound
	}
	return updated, nil
}

// Delete removes a catalog entry. Budget lines composed from it are
// snapshots and are not touched.
func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCatalogEntryNotFound
	}
	return nil
}

func (u *CatalogUseCase) List(ctx context.Context, t entities.CatalogType) ([]entities.CatalogEntry, error) {
	if !t.Valid() {
		return nil, ErrInvalidCatalogType
	}
	return u.repo.ListByType(ctx, t)
}
