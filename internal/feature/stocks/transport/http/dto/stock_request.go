// Package dto defines data transfer objects for the stocks HTTP API.
package dto

// CreateStockRequest is the request body for POST /api/stock.
type CreateStockRequest struct {
	Symbol      string  `json:"symbol" binding:"required,max=20"`
	CompanyName string  `json:"companyName" binding:"required,max=255"`
	Purchase    float64 `json:"purchase" binding:"required,gt=0"`
	LastDiv     float64 `json:"lastDiv" binding:"gte=0"`
	Industry    string  `json:"industry" binding:"required,max=100"`
	MarketCap   int64   `json:"marketCap" binding:"gte=0"`
}

// UpdateStockRequest is the request body for PUT /api/stock/:id.
// Every field is written on update; there is no partial patch.
type UpdateStockRequest struct {
	Symbol      string  `json:"symbol" binding:"required,max=20"`
	CompanyName string  `json:"companyName" binding:"required,max=255"`
	Purchase    float64 `json:"purchase" binding:"required,gt=0"`
	LastDiv     float64 `json:"lastDiv" binding:"gte=0"`
	Industry    string  `json:"industry" binding:"required,max=100"`
	MarketCap   int64   `json:"marketCap" binding:"gte=0"`
}

// StockListQuery binds the filter query string for GET /api/stock.
type StockListQuery struct {
	Symbol       string `form:"symbol"`
	CompanyName  string `form:"companyName"`
	SortBy       string `form:"sortBy"`
	IsDescending bool   `form:"isDescending"`
}
