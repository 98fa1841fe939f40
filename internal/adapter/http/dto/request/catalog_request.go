package request

// The three catalogs accept the same shape but keep their historical cost
// field names at the API boundary: base_price (products), provider_value
// (labor) and base_cost (transport). Internally all of them become the
// entity's single cost basis.

type ProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	BasePrice     float64 `json:"base_price"`
	MarginPercent float64 `json:"margin_percent"`
}

type LaborRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	ProviderValue float64 `json:"provider_value"`
	MarginPercent float64 `json:"margin_percent"`
}

type TransportRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	BaseCost      float64 `json:"base_cost"`
	MarginPercent float64 `json:"margin_percent"`
}

// Partial updates: nil means "leave as is". Sending only the cost field or
// only the margin still triggers a final-price recomputation downstream.

type ProductUpdateRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	BasePrice     *float64 `json:"base_price"`
	MarginPercent *float64 `json:"margin_percent"`
}

type LaborUpdateRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	ProviderValue *float64 `json:"provider_value"`
	MarginPercent *float64 `json:"margin_percent"`
}

type TransportUpdateRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	BaseCost      *float64 `json:"base_cost"`
	MarginPercent *float64 `json:"margin_percent"`
}
