package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
)

// nEuro values are stored as decimal-formatted text and parsed to float64 for
// arithmetic, then serialized back to text. This conversion contract is kept
// for compatibility with existing clients and stored rows; repeated round-trips
// can accumulate floating-point error.

// ParseAmount parses a text-encoded decimal into a float64
func ParseAmount(amount string) (float64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}
	return value, nil
}

// FormatAmount serializes a float64 back into the shortest decimal text that
// round-trips, matching the original wire encoding of balances
func FormatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// ParseQuantity parses a retribution quantity as an integer, used by the flat
// ("Valor Inteiro") retribution kind
func ParseQuantity(qty string) (int64, error) {
	qty = strings.TrimSpace(qty)
	value, err := strconv.ParseInt(qty, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidRetribution, qty)
	}
	return value, nil
}

// ParseRoundNumber parses a text-encoded round sequence number
func ParseRoundNumber(number string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil {
		return 0, fmt.Errorf("%w: bad round number %q", errs.ErrInvalidRequest, number)
	}
	return n, nil
}
