package entity

import "time"

// AggregateValues keeps a group's running totals: the pooled nEuro, the member
// counter and the retained fund ("fundoRetido"). One row per group, created
// lazily by the first applyNEuro call.
//
// TotalUsers accumulates the counts supplied by applyNEuro calls and is
// decremented when users are deleted; it is a cached counter, not a derived
// live headcount, so it can drift from the true member count.
type AggregateValues struct {
	ID           string
	GroupID      string
	TotalNEuro   string
	TotalUsers   int
	RetainedFund string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Pool parses the pooled total as a float64
func (a *AggregateValues) Pool() (float64, error) {
	return ParseAmount(a.TotalNEuro)
}

// Accumulate adds a contribution to the pool and the supplied member count to
// the counter. The count is additive, not a replacement.
func (a *AggregateValues) Accumulate(amount float64, members int) error {
	pool, err := a.Pool()
	if err != nil {
		return err
	}
	a.TotalNEuro = FormatAmount(pool + amount)
	a.TotalUsers += members
	return nil
}

// RetainedPool parses the retained fund as a float64. An empty fund counts
// as zero.
func (a *AggregateValues) RetainedPool() (float64, error) {
	if a.RetainedFund == "" {
		return 0, nil
	}
	return ParseAmount(a.RetainedFund)
}
