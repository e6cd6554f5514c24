package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/persistence"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/usecase"
)

// UserUseCase implements the user management business logic
type UserUseCase struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.UserUseCase {
	return &UserUseCase{
		uow:          uow,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateUser creates a new user in a group. A missing balance starts at "0".
func (u *UserUseCase) CreateUser(ctx context.Context, req usecase.CreateUserRequest) (*entity.User, error) {
	if req.Name == "" || req.GroupID == "" {
		return nil, errs.ErrInvalidRequest
	}

	nEuro := req.NEuro
	if nEuro == "" {
		nEuro = "0"
	}
	if _, err := entity.ParseAmount(nEuro); err != nil {
		return nil, err
	}

	now := u.timeProvider.Now()
	user := &entity.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Contact:   req.Contact,
		GroupID:   req.GroupID,
		NEuro:     nEuro,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"name":    req.Name,
			"groupId": req.GroupID,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId":  user.ID,
		"groupId": user.GroupID,
	})
	return user, nil
}

// ListUsers returns all users
func (u *UserUseCase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.userRepo.List(ctx)
}

// GetUser returns one user
func (u *UserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// UpdateUser rewrites a user's editable fields
func (u *UserUseCase) UpdateUser(ctx context.Context, id string, req usecase.CreateUserRequest) (*entity.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Contact != "" {
		user.Contact = req.Contact
	}
	if req.GroupID != "" {
		user.GroupID = req.GroupID
	}
	if req.NEuro != "" {
		if _, err := entity.ParseAmount(req.NEuro); err != nil {
			return nil, err
		}
		user.NEuro = req.NEuro
	}
	user.UpdatedAt = u.timeProvider.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateNEuro sets a user's balance directly
func (u *UserUseCase) UpdateNEuro(ctx context.Context, id, nEuro string) (*entity.User, error) {
	if _, err := entity.ParseAmount(nEuro); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.UpdateBalance(ctx, id, nEuro); err != nil {
		return nil, err
	}

	user.NEuro = nEuro
	u.logger.Info("User balance set", map[string]any{
		"userId": id,
		"nEuro":  nEuro,
	})
	return user, nil
}

// DeleteUser removes a user and decrements the owning group's cached member
// counter, both inside one unit of work. The counter is ad-hoc bookkeeping;
// a group without an aggregate row is left untouched.
func (u *UserUseCase) DeleteUser(ctx context.Context, id string) error {
	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return err
	}

	user, err := u.uow.Users(txCtx).GetByID(txCtx, id)
	if err != nil {
		_ = u.uow.Rollback(txCtx)
		return err
	}

	if err := u.uow.Users(txCtx).Delete(txCtx, id); err != nil {
		_ = u.uow.Rollback(txCtx)
		return err
	}

	values, err := u.uow.Aggregates(txCtx).GetByGroup(txCtx, user.GroupID)
	switch {
	case errors.Is(err, errs.ErrAggregateNotFound):
		// Nothing to decrement yet
	case err != nil:
		_ = u.uow.Rollback(txCtx)
		return err
	default:
		values.TotalUsers--
		values.UpdatedAt = u.timeProvider.Now()
		if err := u.uow.Aggregates(txCtx).Update(txCtx, values); err != nil {
			_ = u.uow.Rollback(txCtx)
			return err
		}
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return err
	}

	u.logger.Info("User deleted", map[string]any{
		"userId":  id,
		"groupId": user.GroupID,
	})
	return nil
}
