package model

import (
	"time"
)

// Round represents the database model for game rounds
type Round struct {
	ID             string    `gorm:"primaryKey;size:36"`
	GroupID        string    `gorm:"not null;index;size:36"`
	NEuro          string    `gorm:"column:n_euro;not null;size:50"`
	Retribution    string    `gorm:"not null;size:50"`
	RetributionQty string    `gorm:"not null;size:50"`
	Number         string    `gorm:"not null;size:50"`
	CreatedAt      time.Time `gorm:"not null"`

	Group Group `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName specifies the table name for Round
func (Round) TableName() string {
	return "rounds"
}
