package model

import (
	"time"
)

// User represents the database model for players
type User struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"not null;size:255"`
	Contact   string    `gorm:"size:255"`
	GroupID   string    `gorm:"not null;index;size:36"`
	NEuro     string    `gorm:"column:n_euro;size:50"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Group Group `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
