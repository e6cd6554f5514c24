package persistence

import (
	"context"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
)

// RoundRepository defines persistence operations for rounds
type RoundRepository interface {
	// Create inserts a new round
	Create(ctx context.Context, round *entity.Round) error

	// GetByGroupAndNumber retrieves the round with the given text-encoded
	// sequence number, ErrRoundNotFound if missing
	GetByGroupAndNumber(ctx context.Context, groupID, number string) (*entity.Round, error)

	// ListByGroup returns a group's rounds ordered by sequence number
	ListByGroup(ctx context.Context, groupID string) ([]entity.Round, error)

	// Latest returns the group's most recent round by creation timestamp,
	// ErrRoundNotFound when the group has none
	Latest(ctx context.Context, groupID string) (*entity.Round, error)

	// HasNumberAbove reports whether the group has any round with a sequence
	// number strictly greater than n
	HasNumberAbove(ctx context.Context, groupID string, n int) (bool, error)

	// Update rewrites a round's parameters
	Update(ctx context.Context, round *entity.Round) error

	// DeleteByGroup removes all rounds belonging to a group
	DeleteByGroup(ctx context.Context, groupID string) error
}
