// Package entity defines the domain models for the portfolio feature.
package entity

// PortfolioItem is a membership row pairing a user with a stock. The pair is
// the identity: there is no surrogate key, and the composite primary key is
// what ultimately enforces the no-duplicate invariant under concurrent adds.
type PortfolioItem struct {
	UserName string `gorm:"primaryKey;size:255"`
	StockID  uint   `gorm:"primaryKey"`
}

// TableName keeps the join-table naming explicit.
func (PortfolioItem) TableName() string {
	return "portfolio_items"
}
