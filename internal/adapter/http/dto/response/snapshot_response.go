package response

import (
	"time"

	"gestao_facil/internal/domain/entities"
	"gestao_facil/internal/domain/pricing"
	"gestao_facil/internal/usecase"
)

// BudgetSnapshotResponse is the read-only shape handed to the report/export
// collaborator. The client-facing sheet carries name/type/quantity/prices;
// the internal cost sheet (internal=true) additionally exposes unit cost,
// total cost, margin and profit per line and cost/profit in the summary.

type SnapshotLineResponse struct {
	Name          string   `json:"name"`
	SourceType    string   `json:"source_type"`
	Quantity      int      `json:"quantity"`
	UnitPrice     float64  `json:"unit_price"`
	TotalPrice    float64  `json:"total_price"`
	UnitCost      *float64 `json:"unit_cost,omitempty"`
	TotalCost     *float64 `json:"total_cost,omitempty"`
	MarginPercent *float64 `json:"margin_percent,omitempty"`
	Profit        *float64 `json:"profit,omitempty"`
}

type SnapshotSummaryResponse struct {
	TotalPrice    float64  `json:"total_price"`
	TotalCost     *float64 `json:"total_cost,omitempty"`
	TotalProfit   *float64 `json:"total_profit,omitempty"`
	MarginPercent *float64 `json:"margin_percent,omitempty"`
}

type SnapshotGroupResponse struct {
	Label   string                  `json:"label,omitempty"`
	Lines   []SnapshotLineResponse  `json:"lines"`
	Summary SnapshotSummaryResponse `json:"summary"`
}

type BudgetSnapshotResponse struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	ClientID   string                  `json:"client_id,omitempty"`
	ClientName string                  `json:"client_name,omitempty"`
	ProjectID  string                  `json:"project_id,omitempty"`
	Status     string                  `json:"status"`
	Notes      string                  `json:"notes,omitempty"`
	Groups     []SnapshotGroupResponse `json:"groups"`
	Summary    SnapshotSummaryResponse `json:"summary"`
	CreatedAt  time.Time               `json:"created_at"`
}

func FromBudgetSnapshot(snap usecase.BudgetSnapshot, internal bool) BudgetSnapshotResponse {
	groups := make([]SnapshotGroupResponse, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		groups = append(groups, SnapshotGroupResponse{
			Label:   g.Label,
			Lines:   snapshotLines(g.Lines, internal),
			Summary: snapshotSummary(g.Summary, internal),
		})
	}
	b := snap.Budget
	return BudgetSnapshotResponse{
		ID:         b.ID,
		Name:       b.Name,
		ClientID:   b.ClientID,
		ClientName: b.ClientName,
		ProjectID:  b.ProjectID,
		Status:     string(b.Status),
		Notes:      b.Notes,
		Groups:     groups,
		Summary:    snapshotSummary(snap.Summary, internal),
		CreatedAt:  b.CreatedAt,
	}
}

func snapshotLines(lines []entities.BudgetLine, internal bool) []SnapshotLineResponse {
	out := make([]SnapshotLineResponse, 0, len(lines))
	for _, l := range lines {
		sl := SnapshotLineResponse{
			Name:       l.Name,
			SourceType: string(l.SourceType),
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.TotalPrice,
		}
		if internal {
			unitCost, totalCost, margin, profit := l.UnitCost, l.TotalCost, l.MarginPercent, l.Profit
			sl.UnitCost = &unitCost
			sl.TotalCost = &totalCost
			sl.MarginPercent = &margin
			sl.Profit = &profit
		}
		out = append(out, sl)
	}
	return out
}

func snapshotSummary(s pricing.Summary, internal bool) SnapshotSummaryResponse {
	out := SnapshotSummaryResponse{TotalPrice: s.TotalPrice}
	if internal {
		totalCost, totalProfit, margin := s.TotalCost, s.TotalProfit, s.MarginPercent
		out.TotalCost = &totalCost
		out.TotalProfit = &totalProfit
		out.MarginPercent = &margin
	}
	return out
}
