package persistence

import (
	"context"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
)

// GroupRepository defines persistence operations for groups
type GroupRepository interface {
	// Create inserts a new group
	//
	// Possible errors:
	// - ErrDuplicateGroup: if a group with the same name exists
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, group *entity.Group) error

	// GetByID retrieves a group by id, ErrGroupNotFound if missing
	GetByID(ctx context.Context, id string) (*entity.Group, error)

	// GetByName retrieves a group by its unique name, ErrGroupNotFound if missing
	GetByName(ctx context.Context, name string) (*entity.Group, error)

	// List returns all groups
	List(ctx context.Context) ([]entity.Group, error)

	// UpdateName renames a group
	UpdateName(ctx context.Context, id, name string) error

	// UpdateGameRule stores the free-text game rule for a group
	UpdateGameRule(ctx context.Context, id, gameRule string) error

	// SetGameServerCreated flags that a real-time session exists for the group
	SetGameServerCreated(ctx context.Context, id string, created bool) error

	// Delete removes the group row only; cascading cleanup is coordinated by
	// the unit of work
	Delete(ctx context.Context, id string) error
}
