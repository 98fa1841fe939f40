package request

import (
	"gestao_facil/internal/domain/entities"
)

// BudgetLineRequest is a line as submitted by the dashboard. unit_price and
// the totals are never accepted from the caller; the engine recomputes them
// from unit_cost, margin_percent and quantity.
type BudgetLineRequest struct {
	ID            string  `json:"id"`
	SourceType    string  `json:"source_type" binding:"required"`
	SourceItemID  string  `json:"source_item_id"`
	Name          string  `json:"name" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required"`
	UnitCost      float64 `json:"unit_cost"`
	MarginPercent float64 `json:"margin_percent"`
	GroupLabel    string  `json:"group_label"`
}

func (r BudgetLineRequest) ToLine() entities.BudgetLine {
	return entities.BudgetLine{
		ID:            r.ID,
		SourceType:    entities.CatalogType(r.SourceType),
		SourceItemID:  r.SourceItemID,
		Name:          r.Name,
		Quantity:      r.Quantity,
		UnitCost:      r.UnitCost,
		MarginPercent: r.MarginPercent,
		GroupLabel:    r.GroupLabel,
	}
}

// CreateBudgetRequest deliberately leaves name/lines unguarded by binding
// tags: the use case owns those validations and reports them uniformly.
type CreateBudgetRequest struct {
	Name       string              `json:"name"`
	ClientID   string              `json:"client_id"`
	ClientName string              `json:"client_name"`
	ProjectID  string              `json:"project_id"`
	Notes      string              `json:"notes"`
	Lines      []BudgetLineRequest `json:"lines"`
}

func (r CreateBudgetRequest) ToLines() []entities.BudgetLine {
	return toLines(r.Lines)
}

type UpdateBudgetRequest struct {
	Status     *string `json:"status"`
	Notes      *string `json:"notes"`
	ClientID   *string `json:"client_id"`
	ClientName *string `json:"client_name"`
	ProjectID  *string `json:"project_id"`
}

type ReplaceLinesRequest struct {
	Lines []BudgetLineRequest `json:"lines"`
}

func (r ReplaceLinesRequest) ToLines() []entities.BudgetLine {
	return toLines(r.Lines)
}

// ComposeLineRequest asks the engine to snapshot a catalog entry into a
// budget line. margin_percent, when present, overrides the entry's margin.
type ComposeLineRequest struct {
	SourceType    string   `json:"source_type" binding:"required"`
	SourceItemID  string   `json:"source_item_id" binding:"required"`
	Quantity      int      `json:"quantity" binding:"required"`
	MarginPercent *float64 `json:"margin_percent"`
	GroupLabel    string   `json:"group_label"`
}

func toLines(reqs []BudgetLineRequest) []entities.BudgetLine {
	if len(reqs) == 0 {
		return nil
	}
	lines := make([]entities.BudgetLine, 0, len(reqs))
	for _, lr := range reqs {
		lines = append(lines, lr.ToLine())
	}
	return lines
}
