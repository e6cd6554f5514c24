package model

import (
	"time"
)

// Group represents the database model for groups
type Group struct {
	ID                string    `gorm:"primaryKey;size:36"`
	Name              string    `gorm:"uniqueIndex;not null;size:255"`
	GameRule          string    `gorm:"type:text"`
	GameServerCreated bool      `gorm:"not null;default:false"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for Group
func (Group) TableName() string {
	return "groups"
}
