// Package entity defines the domain models for the stocks feature.
package entity

import (
	commententity "finstock_backend/internal/feature/comments/domain/entity"
)

// Stock represents a listed financial instrument in the catalog.
// The ID is assigned by the store on creation and never changes.
// Symbol is unique by convention only; the schema does not enforce it.
type Stock struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Symbol      string  `gorm:"size:20;not null;index" json:"symbol"`
	CompanyName string  `gorm:"size:255;not null" json:"companyName"`
	Purchase    float64 `gorm:"type:decimal(18,2);not null" json:"purchase"`
	LastDiv     float64 `gorm:"type:decimal(18,2);not null" json:"lastDiv"`
	Industry    string  `gorm:"size:100;not null" json:"industry"`
	MarketCap   int64   `gorm:"not null;default:0" json:"marketCap"`

	// Comments holds the annotations attached to this stock. The store
	// ignores the field; repositories fill it on single-stock reads with a
	// separate query against the comments table.
	Comments []commententity.Comment `gorm:"-" json:"comments,omitempty"`
}

// StockQuery is the optional filter for stock listing.
// Zero values mean "no constraint".
type StockQuery struct {
	Symbol      string
	CompanyName string
	SortBy      string
	Descending  bool
}
