package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gestao_facil/internal/domain/entities"
	"gestao_facil/internal/domain/pricing"
	"gestao_facil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrInvalidBudgetID     = errors.New("invalid budget id")
	ErrInvalidBudgetName   = errors.New("invalid budget name")
	ErrEmptyBudgetLines    = errors.New("budget requires at least one line")
	ErrInvalidBudgetStatus = errors.New("invalid budget status")
)

const cloneNameSuffix = " (Copy)"

// BudgetInput carries the caller-settable fields of a new budget. Totals are
// always derived from the lines, never accepted from the caller.
type BudgetInput struct {
	Name       string
	ClientID   string
	ClientName string
	ProjectID  string
	Notes      string
	Lines      []entities.BudgetLine
}

// BudgetUpdate is a partial field update; nil fields are left untouched.
// Totals are not affected (lines are replaced through UpdateLines only).
type BudgetUpdate struct {
	Status     *entities.BudgetStatus
	Notes      *string
	ClientID   *string
	ClientName *string
	ProjectID  *string
}

// BudgetSnapshot is the read-only shape consumed by the report/export
// collaborator: the budget fields, its lines grouped for display and the
// whole-budget summary.
type BudgetSnapshot struct {
	Budget  entities.Budget
	Groups  []pricing.LineGroup
	Summary pricing.Summary
}

// IBudgetUseCase owns the budget lifecycle: creation, mutation with atomic
// totals recomputation, status changes, cloning and deletion.
//
// Status transitions are deliberately unrestricted: the dashboard allows
// moving a budget between any two statuses.

type IBudgetUseCase interface {
	Create(ctx context.Context, in BudgetInput) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
	UpdateLines(ctx context.Context, id string, lines []entities.BudgetLine) (entities.Budget, error)
	UpdateFields(ctx context.Context, id string, upd BudgetUpdate) (entities.Budget, error)
	Clone(ctx context.Context, id string) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
	Snapshot(ctx context.Context, id string) (BudgetSnapshot, error)
}

type BudgetUseCase struct {
	repo interfaces.IBudgetRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo}
}

func (u *BudgetUseCase) Create(ctx context.Context, in BudgetInput) (entities.Budget, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Budget{}, ErrInvalidBudgetName
	}
	if len(in.Lines) == 0 {
		return entities.Budget{}, ErrEmptyBudgetLines
	}

	budgetID := uuid.NewString()
	lines, err := normalizeLines(budgetID, in.Lines, false)
	if err != nil {
		return entities.Budget{}, err
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:         budgetID,
		Name:       name,
		ClientID:   strings.TrimSpace(in.ClientID),
		ClientName: strings.TrimSpace(in.ClientName),
		ProjectID:  strings.TrimSpace(in.ProjectID),
		Status:     entities.BudgetStatusDraft,
		Notes:      in.Notes,
		Lines:      lines,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyTotals(&b)

	return u.repo.Create(ctx, b)
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	return u.mustGet(ctx, id)
}

func (u *BudgetUseCase) List(ctx context.Context) ([]entities.Budget, error) {
	return u.repo.List(ctx)
}

// UpdateLines replaces the whole line collection and recomputes the four
// totals in the same operation. Totals can never be set directly.
func (u *BudgetUseCase) UpdateLines(ctx context.Context, id string, lines []entities.BudgetLine) (entities.Budget, error) {
	if len(lines) == 0 {
		return entities.Budget{}, ErrEmptyBudgetLines
	}

	b, err := u.mustGet(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}

	normalized, err := normalizeLines(b.ID, lines, false)
	if err != nil {
		return entities.Budget{}, err
	}

	stored, err := u.repo.ReplaceLines(ctx, b.ID, normalized)
	if err != nil {
		log.Printf("[budget][usecase] replace lines failed budget_id=%s err=%v", b.ID, err)
		return entities.Budget{}, err
	}

	b.Lines = stored
	applyTotals(&b)
	b.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	updated.Lines = stored
	return updated, nil
}

func (u *BudgetUseCase) UpdateFields(ctx context.Context, id string, upd BudgetUpdate) (entities.Budget, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return entities.Budget{}, ErrInvalidBudgetStatus
	}

	b, err := u.mustGet(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}

	if upd.Status != nil {
		b.Status = *upd.Status
	}
	if upd.Notes != nil {
		b.Notes = *upd.Notes
	}
	if upd.ClientID != nil {
		b.ClientID = strings.TrimSpace(*upd.ClientID)
	}
	if upd.ClientName != nil {
		b.ClientName = strings.TrimSpace(*upd.ClientName)
	}
	if upd.ProjectID != nil {
		b.ProjectID = strings.TrimSpace(*upd.ProjectID)
	}
	b.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	updated.Lines = b.Lines
	return updated, nil
}

// Clone duplicates a budget into a brand-new draft. This is the only
// versioning mechanism: the clone gets a new id, every line gets a fresh id,
// and the numeric fields are copied verbatim.
func (u *BudgetUseCase) Clone(ctx context.Context, id string) (entities.Budget, error) {
	src, err := u.mustGet(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}

	cloneID := uuid.NewString()
	lines, err := normalizeLines(cloneID, src.Lines, true)
	if err != nil {
		return entities.Budget{}, err
	}

	now := time.Now().UTC()
	clone := entities.Budget{
		ID:         cloneID,
		Name:       src.Name + cloneNameSuffix,
		ClientID:   src.ClientID,
		ClientName: src.ClientName,
		ProjectID:  src.ProjectID,
		Status:     entities.BudgetStatusDraft,
		Notes:      src.Notes,
		Lines:      lines,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyTotals(&clone)

	log.Printf("[budget][usecase] cloning budget_id=%s clone_id=%s lines=%d", src.ID, clone.ID, len(lines))
	return u.repo.Create(ctx, clone)
}

// Delete removes the budget and its lines. Catalogs are not affected.
func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBudgetID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBudgetNotFound
	}
	return nil
}

func (u *BudgetUseCase) Snapshot(ctx context.Context, id string) (BudgetSnapshot, error) {
	b, err := u.mustGet(ctx, id)
	if err != nil {
		return BudgetSnapshot{}, err
	}
	return BudgetSnapshot{
		Budget:  b,
		Groups:  pricing.Group(b.Lines),
		Summary: pricing.Summarize(b.Lines),
	}, nil
}

func (u *BudgetUseCase) mustGet(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

// normalizeLines prepares a line collection for storage under budgetID:
// every computed field is rebuilt and quantities are validated. With
// reidentify set, every line gets a fresh id unconditionally (clone
// semantics); otherwise only lines arriving without an id are assigned one.
func normalizeLines(budgetID string, lines []entities.BudgetLine, reidentify bool) ([]entities.BudgetLine, error) {
	out := make([]entities.BudgetLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if reidentify || l.ID == "" {
			l.ID = uuid.NewString()
		}
		l.BudgetID = budgetID
		out = append(out, pricing.RecomputeLine(l))
	}
	return out, nil
}

func applyTotals(b *entities.Budget) {
	s := pricing.Summarize(b.Lines)
	b.TotalValue = s.TotalPrice
	b.TotalCost = s.TotalCost
	b.TotalProfit = s.TotalProfit
	b.MarginPercent = s.MarginPercent
}
