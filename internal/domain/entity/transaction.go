package entity

import "time"

// Transaction is one entry in the append-only nEuro ledger. No aggregation
// guarantee is enforced against balances.
type Transaction struct {
	ID              string
	UserID          string
	RoundID         string
	TransactionType string
	Amount          string
	CreatedAt       time.Time
}
