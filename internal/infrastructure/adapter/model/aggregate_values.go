package model

import (
	"time"
)

// AggregateValues represents the database model for per-group running totals
type AggregateValues struct {
	ID           string    `gorm:"primaryKey;size:36"`
	GroupID      string    `gorm:"uniqueIndex;not null;size:36"`
	TotalNEuro   string    `gorm:"column:total_n_euro;not null;size:50"`
	TotalUsers   int       `gorm:"not null;default:0"`
	RetainedFund string    `gorm:"size:50"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	Group Group `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName specifies the table name for AggregateValues
func (AggregateValues) TableName() string {
	return "aggregate_values"
}
