package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/models"
)

type goalRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewGoalRepository returns a PostgreSQL-backed GoalRepository.
func NewGoalRepository(db *DB, log *logger.Logger) GoalRepository {
	return &goalRepository{db: db, logger: log}
}

func scanGoal(row interface{ Scan(...any) error }, g *models.Goal) error {
	return row.Scan(
		&g.ID, &g.UserID, &g.AccountID, &g.TargetAmount,
		&g.Deadline, &g.IsCompleted, &g.CreatedAt,
	)
}

func (r *goalRepository) CreateGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	log := logger.FromContext(ctx)

	var created models.Goal
	row := r.db.QueryRowContext(ctx, insertGoalQuery,
		goal.UserID, goal.AccountID, goal.TargetAmount, goal.Deadline,
	)
	if err := scanGoal(row, &created); err != nil {
		log.Err(err).Str("func", "CreateGoal").Msg("failed to insert goal")
		return models.Goal{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *goalRepository) GetGoal(ctx context.Context, id int64) (models.Goal, error) {
	log := logger.FromContext(ctx)

	var goal models.Goal
	row := r.db.QueryRowContext(ctx, selectGoalQuery, id)
	if err := scanGoal(row, &goal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Goal{}, ErrGoalNotFound
		}
		log.Err(err).Str("func", "GetGoal").Msg("failed to query goal")
		return models.Goal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return goal, nil
}

func (r *goalRepository) ListGoals(ctx context.Context, userID int64, completed *bool, limit int) ([]models.Goal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListGoalsQuery(userID, completed, limit)
	if err != nil {
		log.Err(err).Str("func", "ListGoals").Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "ListGoals").Msg("failed to query goals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var goal models.Goal
		if err = scanGoal(rows, &goal); err != nil {
			log.Err(err).Str("func", "ListGoals").Msg("failed to scan goal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		goals = append(goals, goal)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return goals, nil
}

func (r *goalRepository) UpdateGoal(ctx context.Context, id int64, update models.GoalUpdate) (models.Goal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateGoalQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "UpdateGoal").Msg("failed to build update query")
		return models.Goal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var goal models.Goal
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanGoal(row, &goal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Goal{}, ErrGoalNotFound
		}
		log.Err(err).Str("func", "UpdateGoal").Msg("failed to update goal")
		return models.Goal{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return goal, nil
}

func (r *goalRepository) DeleteGoal(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteGoalQuery, id)
	if err != nil {
		log.Err(err).Str("func", "DeleteGoal").Msg("failed to delete goal")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) SetGoalCompletion(ctx context.Context, id int64, completed bool) (models.Goal, error) {
	log := logger.FromContext(ctx)

	var goal models.Goal
	row := r.db.QueryRowContext(ctx, setGoalCompletionQuery, id, completed)
	if err := scanGoal(row, &goal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Goal{}, ErrGoalNotFound
		}
		log.Err(err).Str("func", "SetGoalCompletion").Msg("failed to set goal completion")
		return models.Goal{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return goal, nil
}
