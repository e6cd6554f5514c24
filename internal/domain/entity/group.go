package entity

import (
	"strings"
	"time"

	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
)

// Group is a cohort of users playing the cooperation game together across rounds
type Group struct {
	ID                string
	Name              string
	GameRule          string
	GameServerCreated bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewGroup creates a group with the given unique id and name
func NewGroup(id, name string, timeProvider coreport.TimeProvider) (*Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.ErrGroupNameRequired
	}

	now := timeProvider.Now()
	return &Group{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
