// Package entity defines the domain models for the comments feature.
package entity

import "time"

// Comment is a note attached to at most one stock. StockID is nullable: a
// comment may exist unattached. The binding is set once at creation and is
// never part of an update.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:50;not null" json:"title"`
	Content   string    `gorm:"size:150;not null" json:"content"`
	CreatedOn time.Time `gorm:"autoCreateTime" json:"createdOn"`
	StockID   *uint     `gorm:"index" json:"stockId"`
}
