package group

import (
	"context"
	"time"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/persistence"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/usecase"
)

// GroupUseCase implements the group, round and settlement business logic
type GroupUseCase struct {
	uow             persistence.UnitOfWork
	groupRepo       persistence.GroupRepository
	roundRepo       persistence.RoundRepository
	userRepo        persistence.UserRepository
	aggregateRepo   persistence.AggregateRepository
	transactionRepo persistence.TransactionRepository
	lockRepo        persistence.GroupLockRepository
	lockTimeout     time.Duration
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewGroupUseCase creates a new group use case instance
func NewGroupUseCase(
	uow persistence.UnitOfWork,
	groupRepo persistence.GroupRepository,
	roundRepo persistence.RoundRepository,
	userRepo persistence.UserRepository,
	aggregateRepo persistence.AggregateRepository,
	transactionRepo persistence.TransactionRepository,
	lockRepo persistence.GroupLockRepository,
	lockTimeout time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.GroupUseCase {
	return &GroupUseCase{
		uow:             uow,
		groupRepo:       groupRepo,
		roundRepo:       roundRepo,
		userRepo:        userRepo,
		aggregateRepo:   aggregateRepo,
		transactionRepo: transactionRepo,
		lockRepo:        lockRepo,
		lockTimeout:     lockTimeout,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// ListGroups returns all groups
func (g *GroupUseCase) ListGroups(ctx context.Context) ([]entity.Group, error) {
	return g.groupRepo.List(ctx)
}

// GetGroupWithRounds returns a group together with its rounds
func (g *GroupUseCase) GetGroupWithRounds(ctx context.Context, groupID string) (*usecase.GroupWithRounds, error) {
	group, err := g.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	rounds, err := g.roundRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &usecase.GroupWithRounds{Group: *group, Rounds: rounds}, nil
}

// GetGameRule returns the group's stored game rule
func (g *GroupUseCase) GetGameRule(ctx context.Context, groupID string) (string, error) {
	group, err := g.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return "", err
	}
	return group.GameRule, nil
}

// GetRoundDetails returns the round with the given sequence number
func (g *GroupUseCase) GetRoundDetails(ctx context.Context, groupID, number string) (*entity.Round, error) {
	return g.roundRepo.GetByGroupAndNumber(ctx, groupID, number)
}

// UpdateGroup renames a group
func (g *GroupUseCase) UpdateGroup(ctx context.Context, groupID, name string) (*entity.Group, error) {
	group, err := g.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if err := g.groupRepo.UpdateName(ctx, groupID, name); err != nil {
		return nil, err
	}

	group.Name = name
	g.logger.Info("Group renamed", map[string]any{
		"groupId": groupID,
		"name":    name,
	})
	return group, nil
}

// UpdateRound rewrites a round's parameters
func (g *GroupUseCase) UpdateRound(ctx context.Context, roundID string, update usecase.RoundUpdate) error {
	round := &entity.Round{
		ID:             roundID,
		NEuro:          update.NEuro,
		Retribution:    update.Retribution,
		RetributionQty: update.RetributionQty,
		Number:         update.Number,
	}
	return g.roundRepo.Update(ctx, round)
}
