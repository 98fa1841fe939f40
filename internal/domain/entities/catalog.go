package entities

import "time"

// CatalogType discriminates the three priced catalogs of the dashboard.
//
// Each catalog exposes a differently named cost basis at the API/storage
// boundary (base_price / provider_value / base_cost); internally they share
// the single Cost field on CatalogEntry.

type CatalogType string

const (
	CatalogTypeProduct   CatalogType = "product"
	CatalogTypeLabor     CatalogType = "labor"
	CatalogTypeTransport CatalogType = "transport"
)

func (t CatalogType) Valid() bool {
	switch t {
	case CatalogTypeProduct, CatalogTypeLabor, CatalogTypeTransport:
		return true
	}
	return false
}

// CatalogEntry is a reusable priced item definition (produto, mão de obra ou
// transporte).
//
// Invariant: FinalPrice == Cost * (1 + MarginPercent/100) after every create
// or update that touches Cost or MarginPercent.
//
// Storage model (DynamoDB):
//   - PK: id
//   - the cost basis is persisted under the per-type attribute name
type CatalogEntry struct {
	ID            string      `json:"id"`
	Type          CatalogType `json:"type"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Cost          float64     `json:"cost"`
	MarginPercent float64     `json:"margin_percent"`
	FinalPrice    float64     `json:"final_price"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
