package usecase

import (
	"context"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
)

// RoundSpec is one round supplied with a group creation request
type RoundSpec struct {
	NEuro          string
	Retribution    string
	RetributionQty string
	Number         string
}

// CreateGroupRequest carries the group creation input
type CreateGroupRequest struct {
	Name   string
	Rounds []RoundSpec
}

// RoundUpdate carries a round rewrite
type RoundUpdate struct {
	NEuro          string
	Retribution    string
	RetributionQty string
	Number         string
}

// GroupWithRounds pairs a group with its rounds
type GroupWithRounds struct {
	Group  entity.Group
	Rounds []entity.Round
}

// ApplyNEuroRequest carries a per-round deduction. UserID is optional; when
// set, the amount is also subtracted from that user's balance.
type ApplyNEuroRequest struct {
	GroupID    string
	UserID     string
	NEuro      string
	TotalUsers int
}

// ApplyNEuroResult returns the upserted aggregate values and, when a user was
// debited, the user's new balance
type ApplyNEuroResult struct {
	Values      *entity.AggregateValues
	UserBalance string
}

// SettlementResult describes one completed round settlement
type SettlementResult struct {
	GroupID      string
	Share        string
	RetainedFund string
	UsersSettled int
}

// NEuroStats summarizes nEuro balances across all users
type NEuroStats struct {
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Mode    float64 `json:"mode"`
}

// GroupUseCase defines the group, round and settlement business operations
type GroupUseCase interface {
	// CreateGroup creates a group and its initial rounds.
	// ErrGroupNameRequired for an empty name, ErrDuplicateGroup when the name
	// is taken, regardless of the rounds payload.
	CreateGroup(ctx context.Context, req CreateGroupRequest) (*entity.Group, error)

	// ListGroups returns all groups
	ListGroups(ctx context.Context) ([]entity.Group, error)

	// GetGroupWithRounds returns a group and its rounds
	GetGroupWithRounds(ctx context.Context, groupID string) (*GroupWithRounds, error)

	// GetGameRule returns the group's stored game rule
	GetGameRule(ctx context.Context, groupID string) (string, error)

	// GetRoundDetails returns the round with the given sequence number
	GetRoundDetails(ctx context.Context, groupID, number string) (*entity.Round, error)

	// UpdateGroup renames a group
	UpdateGroup(ctx context.Context, groupID, name string) (*entity.Group, error)

	// UpdateRound rewrites a round's parameters
	UpdateRound(ctx context.Context, roundID string, update RoundUpdate) error

	// DeleteGroup removes the group and everything it owns as one atomic unit:
	// ledger entries, users, rounds, aggregate values, then the group row
	DeleteGroup(ctx context.Context, groupID string) error

	// ApplyNEuro applies a per-round deduction and upserts the aggregate values
	ApplyNEuro(ctx context.Context, req ApplyNEuroRequest) (*ApplyNEuroResult, error)

	// NextRound settles the current round: redistributes the pooled nEuro
	// across members applying the latest round's retribution rule, carries the
	// floor remainder into the retained fund and resets the pool
	NextRound(ctx context.Context, groupID string) (*SettlementResult, error)

	// UpdateTotalNEuro adds the retained fund back into the pool for groups
	// that have advanced past round one; no-op otherwise
	UpdateTotalNEuro(ctx context.Context, groupID string) error

	// GetAggregateField returns a single aggregate values field by its wire
	// name (totalNEuro, totalUsuarios, fundoRetido)
	GetAggregateField(ctx context.Context, groupID, field string) (string, error)

	// Stats returns average, median and mode over all users' balances
	Stats(ctx context.Context) (*NEuroStats, error)

	// ListTransactions returns the ledger entries of a group's users
	ListTransactions(ctx context.Context, groupID string) ([]entity.Transaction, error)

	// CreateTransaction appends a ledger entry for a user
	CreateTransaction(ctx context.Context, userID, roundID, transactionType, amount string) (*entity.Transaction, error)
}
