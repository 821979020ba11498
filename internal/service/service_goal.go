package service

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/store"
	"github.com/fintrack/fintrack/models"
)

type goalService struct {
	goalRepository    store.GoalRepository
	accountRepository store.AccountRepository
	logger            *logger.Logger
}

// NewGoalService constructs a GoalService. The account repository is
// needed to validate the account reference on create and update.
func NewGoalService(goalRepository store.GoalRepository, accountRepository store.AccountRepository, logger *logger.Logger) GoalService {
	return &goalService{
		goalRepository:    goalRepository,
		accountRepository: accountRepository,
		logger:            logger,
	}
}

func (g *goalService) CreateGoal(ctx context.Context, callerID int64, goal models.Goal) (models.Goal, error) {
	log := logger.FromContext(ctx)

	if goal.TargetAmount <= 0 || goal.Deadline.IsZero() {
		return models.Goal{}, ErrInvalidDataProvided
	}
	if err := g.checkAccountRef(ctx, callerID, goal.AccountID); err != nil {
		return models.Goal{}, err
	}
	goal.UserID = callerID

	created, err := g.goalRepository.CreateGoal(ctx, goal)
	if err != nil {
		log.Err(err).Int64("account_id", goal.AccountID).Msg("goal creation failed")
		return models.Goal{}, fmt.Errorf("goal creation failed: %w", err)
	}

	return created, nil
}

func (g *goalService) GetGoal(ctx context.Context, callerID, id int64) (models.Goal, error) {
	log := logger.FromContext(ctx)

	goal, err := g.goalRepository.GetGoal(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("goal lookup failed")
		return models.Goal{}, fmt.Errorf("goal lookup failed: %w", err)
	}
	if goal.UserID != callerID {
		return models.Goal{}, ErrNotAllowed
	}

	return goal, nil
}

func (g *goalService) ListGoals(ctx context.Context, callerID int64, completed *bool, limit int) ([]models.Goal, error) {
	log := logger.FromContext(ctx)

	goals, err := g.goalRepository.ListGoals(ctx, callerID, completed, limit)
	if err != nil {
		log.Err(err).Int64("user_id", callerID).Msg("listing goals failed")
		return nil, fmt.Errorf("listing goals failed: %w", err)
	}

	return goals, nil
}

func (g *goalService) UpdateGoal(ctx context.Context, callerID, id int64, update models.GoalUpdate) (models.Goal, error) {
	log := logger.FromContext(ctx)

	goal, err := g.GetGoal(ctx, callerID, id)
	if err != nil {
		return models.Goal{}, err
	}

	if update.AccountID == nil && update.TargetAmount == nil && update.Deadline == nil {
		return goal, nil
	}
	if update.TargetAmount != nil && *update.TargetAmount <= 0 {
		return models.Goal{}, ErrInvalidDataProvided
	}
	if update.AccountID != nil {
		if err = g.checkAccountRef(ctx, callerID, *update.AccountID); err != nil {
			return models.Goal{}, err
		}
	}

	updated, err := g.goalRepository.UpdateGoal(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("goal update failed")
		return models.Goal{}, fmt.Errorf("goal update failed: %w", err)
	}

	return updated, nil
}

func (g *goalService) DeleteGoal(ctx context.Context, callerID, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := g.GetGoal(ctx, callerID, id); err != nil {
		return err
	}

	if err := g.goalRepository.DeleteGoal(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("goal deletion failed")
		return fmt.Errorf("goal deletion failed: %w", err)
	}

	return nil
}

// SetGoalCompletion flips the completion flag. The toggle is idempotent:
// completing a completed goal succeeds and changes nothing.
func (g *goalService) SetGoalCompletion(ctx context.Context, callerID, id int64, completed bool) (models.Goal, error) {
	log := logger.FromContext(ctx)

	if _, err := g.GetGoal(ctx, callerID, id); err != nil {
		return models.Goal{}, err
	}

	goal, err := g.goalRepository.SetGoalCompletion(ctx, id, completed)
	if err != nil {
		log.Err(err).Int64("id", id).Bool("completed", completed).Msg("setting goal completion failed")
		return models.Goal{}, fmt.Errorf("setting goal completion failed: %w", err)
	}

	return goal, nil
}

func (g *goalService) checkAccountRef(ctx context.Context, callerID, accountID int64) error {
	account, err := g.accountRepository.GetAccount(ctx, accountID)
	if err != nil {
		return fmt.Errorf("account lookup failed: %w", err)
	}
	if account.UserID != callerID {
		return ErrNotAllowed
	}

	return nil
}
