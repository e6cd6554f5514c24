package model

import (
	"time"
)

// Transaction represents the database model for nEuro ledger entries
type Transaction struct {
	ID              string    `gorm:"primaryKey;size:36"`
	UserID          string    `gorm:"not null;index;size:36"`
	RoundID         string    `gorm:"index;size:36"`
	TransactionType string    `gorm:"not null;size:50"`
	Amount          string    `gorm:"not null;size:50"`
	CreatedAt       time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
