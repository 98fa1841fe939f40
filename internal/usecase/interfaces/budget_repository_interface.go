package interfaces

import (
	"context"

	"gestao_facil/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget aggregates.
//
// The budget record and its line records live in separate tables; Create and
// ReplaceLines keep them in step. GetByID loads the budget with its lines,
// List returns budget records only (the dashboard list view does not need
// lines).

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	ReplaceLines(ctx context.Context, budgetID string, lines []entities.BudgetLine) ([]entities.BudgetLine, error)
	Delete(ctx context.Context, id string) (bool, error)
}
