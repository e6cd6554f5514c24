package entity

import (
	"fmt"
	"math"

	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
)

// Retribution kinds carried by a round. The literal labels are part of the
// stored data and the API contract.
const (
	RetributionFlat    = "Valor Inteiro"
	RetributionPercent = "Porcentagem"
)

// Settlement holds the result of dividing a group's pooled nEuro across its
// members for one round.
type Settlement struct {
	// Share is the floored per-member share S = floor(P/N)
	Share float64
	// Retained is the leftover carried into the retained fund,
	// R = floor((P/N - S) * N)
	Retained float64
}

// ComputeSettlement divides pool P across members N.
//
// The retained remainder is computed as floor((P/N - S) * N) rather than the
// algebraically equal P - S*N: the two can differ under intermediate
// floating-point rounding and downstream balances depend on the former.
func ComputeSettlement(pool float64, members int) (Settlement, error) {
	if members <= 0 {
		return Settlement{}, errs.ErrNoMembers
	}

	perMember := pool / float64(members)
	share := math.Floor(perMember)
	retained := math.Floor((perMember - share) * float64(members))

	return Settlement{Share: share, Retained: retained}, nil
}

// AdjustedShare applies a round's retribution rule to the flat share.
//
// "Valor Inteiro" adds the quantity (parsed as an integer) on top of the
// share. "Porcentagem" adds quantity percent of the running share - the
// percentage compounds onto the possibly already-bonused share, per the
// literal settlement formula.
func AdjustedShare(share float64, retribution, quantity string) (float64, error) {
	adjusted := share

	switch retribution {
	case RetributionFlat:
		qty, err := ParseQuantity(quantity)
		if err != nil {
			return 0, err
		}
		adjusted += float64(qty)
	case RetributionPercent:
		pct, err := ParseAmount(quantity)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", errs.ErrInvalidRetribution, quantity)
		}
		adjusted += adjusted * (pct / 100)
	}

	return adjusted, nil
}
