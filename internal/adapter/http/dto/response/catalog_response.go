package response

import (
	"time"

	"gestao_facil/internal/domain/entities"
)

// The list/detail payloads mirror the request side: one shape per catalog,
// each with its own cost field name.

type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	BasePrice     float64   `json:"base_price"`
	MarginPercent float64   `json:"margin_percent"`
	FinalPrice    float64   `json:"final_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type LaborResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	ProviderValue float64   `json:"provider_value"`
	MarginPercent float64   `json:"margin_percent"`
	FinalPrice    float64   `json:"final_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TransportResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	BaseCost      float64   `json:"base_cost"`
	MarginPercent float64   `json:"margin_percent"`
	FinalPrice    float64   `json:"final_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromCatalogEntry picks the response shape matching the entry's type.
func FromCatalogEntry(e entities.CatalogEntry) any {
	switch e.Type {
	case entities.CatalogTypeLabor:
		return LaborResponse{
			ID: e.ID, Name: e.Name, Description: e.Description,
			ProviderValue: e.Cost, MarginPercent: e.MarginPercent, FinalPrice: e.FinalPrice,
			CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
		}
	case entities.CatalogTypeTransport:
		return TransportResponse{
			ID: e.ID, Name: e.Name, Description: e.Description,
			BaseCost: e.Cost, MarginPercent: e.MarginPercent, FinalPrice: e.FinalPrice,
			CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
		}
	default:
		return ProductResponse{
			ID: e.ID, Name: e.Name, Description: e.Description,
			BasePrice: e.Cost, MarginPercent: e.MarginPercent, FinalPrice: e.FinalPrice,
			CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
		}
	}
}

// FromCatalogEntries maps a listing; all entries share one catalog type.
func FromCatalogEntries(entries []entities.CatalogEntry) []any {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromCatalogEntry(e))
	}
	return out
}
