package model

import (
	"time"
)

// GroupLock represents a lock on a group record for settlement processing
type GroupLock struct {
	GroupID   string    `gorm:"primaryKey;not null;size:36"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GroupLock
func (GroupLock) TableName() string {
	return "group_locks"
}
