package entity

import "time"

// User is a player. NEuro holds the balance as decimal-encoded text; it is
// mutated by settlement and by manual edits and may go negative.
type User struct {
	ID        string
	Name      string
	Contact   string
	GroupID   string
	NEuro     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Balance parses the user's text-encoded nEuro balance
func (u *User) Balance() (float64, error) {
	return ParseAmount(u.NEuro)
}

// Deduct subtracts amount from the balance. Balances are not floored at zero;
// deductions may drive them negative.
func (u *User) Deduct(amount float64) error {
	balance, err := u.Balance()
	if err != nil {
		return err
	}
	u.NEuro = FormatAmount(balance - amount)
	return nil
}
