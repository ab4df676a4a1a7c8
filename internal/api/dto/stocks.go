package dto

// CreateStockRequest is the DTO for creating a new stock.
type CreateStockRequest struct {
	Ticker       string   `json:"ticker" validate:"required,max=10"`
	Name         string   `json:"name" validate:"required,max=255"`
	Sector       *string  `json:"sector" validate:"omitempty,max=100"`
	CurrentPrice *float64 `json:"current_price" validate:"omitempty,gt=0"`
	Description  *string  `json:"description" validate:"omitempty,max=1000"`
}

// UpdateStockRequest is the DTO for partially updating a stock. Only non-nil
// fields are applied; omitted fields keep their stored values.
type UpdateStockRequest struct {
	Ticker       *string  `json:"ticker" validate:"omitempty,min=1,max=10"`
	Name         *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Sector       *string  `json:"sector" validate:"omitempty,max=100"`
	CurrentPrice *float64 `json:"current_price" validate:"omitempty,gt=0"`
	Description  *string  `json:"description" validate:"omitempty,max=1000"`
}

// StockResponse is the DTO for API responses containing stock details.
type StockResponse struct {
	ID           string   `json:"id"`
	Ticker       string   `json:"ticker"`
	Name         string   `json:"name"`
	Sector       *string  `json:"sector"`
	CurrentPrice *float64 `json:"current_price"`
	Description  *string  `json:"description"`
}

// StockListResponse is the DTO for one page of the catalog.
type StockListResponse struct {
	Stocks   []StockResponse `json:"stocks"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}
