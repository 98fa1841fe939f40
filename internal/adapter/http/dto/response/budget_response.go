package response

import (
	"time"

	"gestao_facil/internal/domain/entities"
)

type BudgetLineResponse struct {
	ID            string  `json:"id"`
	BudgetID      string  `json:"budget_id,omitempty"`
	SourceType    string  `json:"source_type"`
	SourceItemID  string  `json:"source_item_id,omitempty"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	UnitCost      float64 `json:"unit_cost"`
	UnitPrice     float64 `json:"unit_price"`
	MarginPercent float64 `json:"margin_percent"`
	TotalCost     float64 `json:"total_cost"`
	TotalPrice    float64 `json:"total_price"`
	Profit        float64 `json:"profit"`
	GroupLabel    string  `json:"group_label,omitempty"`
}

type BudgetResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	ClientID      string               `json:"client_id,omitempty"`
	ClientName    string               `json:"client_name,omitempty"`
	ProjectID     string               `json:"project_id,omitempty"`
	Status        string               `json:"status"`
	Notes         string               `json:"notes,omitempty"`
	Lines         []BudgetLineResponse `json:"lines,omitempty"`
	TotalValue    float64              `json:"total_value"`
	TotalCost     float64              `json:"total_cost"`
	TotalProfit   float64              `json:"total_profit"`
	MarginPercent float64              `json:"margin_percent"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func FromBudgetLine(l entities.BudgetLine) BudgetLineResponse {
	return BudgetLineResponse{
		ID:            l.ID,
		BudgetID:      l.BudgetID,
		SourceType:    string(l.SourceType),
		SourceItemID:  l.SourceItemID,
		Name:          l.Name,
		Quantity:      l.Quantity,
		UnitCost:      l.UnitCost,
		UnitPrice:     l.UnitPrice,
		MarginPercent: l.MarginPercent,
		TotalCost:     l.TotalCost,
		TotalPrice:    l.TotalPrice,
		Profit:        l.Profit,
		GroupLabel:    l.GroupLabel,
	}
}

func FromBudget(b entities.Budget) BudgetResponse {
	lines := make([]BudgetLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, FromBudgetLine(l))
	}
	return BudgetResponse{
		ID:            b.ID,
		Name:          b.Name,
		ClientID:      b.ClientID,
		ClientName:    b.ClientName,
		ProjectID:     b.ProjectID,
		Status:        string(b.Status),
		Notes:         b.Notes,
		Lines:         lines,
		TotalValue:    b.TotalValue,
		TotalCost:     b.TotalCost,
		TotalProfit:   b.TotalProfit,
		MarginPercent: b.MarginPercent,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}
