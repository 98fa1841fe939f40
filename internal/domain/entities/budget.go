package entities

import "time"

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - There is no enforced transition graph: the dashboard lets the user move
//     a budget between any two statuses.

type BudgetStatus string

const (
	BudgetStatusDraft    BudgetStatus = "draft"
	BudgetStatusSent     BudgetStatus = "sent"
	BudgetStatusApproved BudgetStatus = "approved"
	BudgetStatusRejected BudgetStatus = "rejected"
)

func (s BudgetStatus) Valid() bool {
	switch s {
	case BudgetStatusDraft, BudgetStatusSent, BudgetStatusApproved, BudgetStatusRejected:
		return true
	}
	return false
}

// BudgetLine is a snapshot of a catalog entry adapted into a budget.
//
// The line copies name/cost at composition time; later catalog edits or
// deletions never reprice an existing line. SourceItemID is kept for
// traceability only, it is not a live reference.
//
// Invariant: UnitPrice == UnitCost * (1 + MarginPercent/100),
// TotalCost == UnitCost*Quantity, TotalPrice == UnitPrice*Quantity,
// Profit == TotalPrice - TotalCost, recomputed together on every mutation.
type BudgetLine struct {
	ID            string      `json:"id"`
	BudgetID      string      `json:"budget_id,omitempty"`
	SourceType    CatalogType `json:"source_type"`
	SourceItemID  string      `json:"source_item_id,omitempty"`
	Name          string      `json:"name"`
	Quantity      int         `json:"quantity"`
	UnitCost      float64     `json:"unit_cost"`
	UnitPrice     float64     `json:"unit_price"`
	MarginPercent float64     `json:"margin_percent"`
	TotalCost     float64     `json:"total_cost"`
	TotalPrice    float64     `json:"total_price"`
	Profit        float64     `json:"profit"`
	GroupLabel    string      `json:"group_label,omitempty"`
}

// Budget is the aggregate root persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - budgets table, PK: id
//   - budget_lines table, PK: id, GSI1 (budget_id-index): budget_id
//
// The four totals are always derived from the line collection and are never
// settable on their own.
type Budget struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	ClientID      string       `json:"client_id,omitempty"`
	ClientName    string       `json:"client_name,omitempty"`
	ProjectID     string       `json:"project_id,omitempty"`
	Status        BudgetStatus `json:"status"`
	Notes         string       `json:"notes,omitempty"`
	Lines         []BudgetLine `json:"lines"`
	TotalValue    float64      `json:"total_value"`
	TotalCost     float64      `json:"total_cost"`
	TotalProfit   float64      `json:"total_profit"`
	MarginPercent float64      `json:"margin_percent"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
