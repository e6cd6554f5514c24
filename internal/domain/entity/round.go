package entity

import "time"

// Round is one iteration of the game with its own retribution rule. Number is
// the text-encoded sequence number ("nRodada" on the wire); CreatedAt orders
// rounds for settlement, most recent first.
type Round struct {
	ID             string
	GroupID        string
	NEuro          string
	Retribution    string
	RetributionQty string
	Number         string
	CreatedAt      time.Time
}
