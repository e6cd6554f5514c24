package group

import (
	"context"
	"sort"
	"strconv"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/usecase"
)

// GetAggregateField returns a single aggregate values field by its wire name
func (g *GroupUseCase) GetAggregateField(ctx context.Context, groupID, field string) (string, error) {
	values, err := g.aggregateRepo.GetByGroup(ctx, groupID)
	if err != nil {
		return "", err
	}

	switch field {
	case "totalNEuro":
		return values.TotalNEuro, nil
	case "totalUsuarios":
		return strconv.Itoa(values.TotalUsers), nil
	case "fundoRetido":
		return values.RetainedFund, nil
	default:
		return "", errs.ErrUnknownField
	}
}

// Stats computes average, median and mode across all users' nEuro balances.
// Unparseable balances are skipped rather than failing the whole report.
func (g *GroupUseCase) Stats(ctx context.Context) (*usecase.NEuroStats, error) {
	users, err := g.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	balances := make([]float64, 0, len(users))
	for _, user := range users {
		balance, err := entity.ParseAmount(user.NEuro)
		if err != nil {
			g.logger.Warn("Skipping unparseable balance in stats", map[string]any{
				"userId": user.ID,
				"nEuro":  user.NEuro,
			})
			continue
		}
		balances = append(balances, balance)
	}

	stats := &usecase.NEuroStats{}
	if len(balances) == 0 {
		return stats, nil
	}

	sort.Float64s(balances)

	var sum float64
	for _, b := range balances {
		sum += b
	}
	stats.Average = sum / float64(len(balances))

	mid := len(balances) / 2
	if len(balances)%2 == 0 {
		stats.Median = (balances[mid-1] + balances[mid]) / 2
	} else {
		stats.Median = balances[mid]
	}

	// Mode: the most frequent balance; ties resolve to the smallest value
	counts := make(map[float64]int, len(balances))
	best := 0
	for _, b := range balances {
		counts[b]++
	}
	for _, b := range balances {
		if counts[b] > best {
			best = counts[b]
			stats.Mode = b
		}
	}

	return stats, nil
}
