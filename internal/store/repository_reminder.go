package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/models"
)

type reminderRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewReminderRepository returns a PostgreSQL-backed ReminderRepository.
func NewReminderRepository(db *DB, log *logger.Logger) ReminderRepository {
	return &reminderRepository{db: db, logger: log}
}

func scanReminder(row interface{ Scan(...any) error }, rem *models.Reminder) error {
	return row.Scan(
		&rem.ID, &rem.UserID, &rem.Title, &rem.Amount,
		&rem.Date, &rem.Recurrence, &rem.IsActive, &rem.CreatedAt,
	)
}

func (r *reminderRepository) CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	var created models.Reminder
	row := r.db.QueryRowContext(ctx, insertReminderQuery,
		reminder.UserID, reminder.Title, reminder.Amount, reminder.Date, reminder.Recurrence,
	)
	if err := scanReminder(row, &created); err != nil {
		log.Err(err).Str("func", "CreateReminder").Msg("failed to insert reminder")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *reminderRepository) GetReminder(ctx context.Context, id int64) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	var reminder models.Reminder
	row := r.db.QueryRowContext(ctx, selectReminderQuery, id)
	if err := scanReminder(row, &reminder); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reminder{}, ErrReminderNotFound
		}
		log.Err(err).Str("func", "GetReminder").Msg("failed to query reminder")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return reminder, nil
}

func (r *reminderRepository) ListReminders(ctx context.Context, userID int64, active *bool, limit int) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRemindersQuery(userID, active, limit)
	if err != nil {
		log.Err(err).Str("func", "ListReminders").Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "ListReminders").Msg("failed to query reminders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var reminder models.Reminder
		if err = scanReminder(rows, &reminder); err != nil {
			log.Err(err).Str("func", "ListReminders").Msg("failed to scan reminder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reminders = append(reminders, reminder)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reminders, nil
}

func (r *reminderRepository) UpdateReminder(ctx context.Context, id int64, update models.ReminderUpdate) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateReminderQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "UpdateReminder").Msg("failed to build update query")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var reminder models.Reminder
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanReminder(row, &reminder); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reminder{}, ErrReminderNotFound
		}
		log.Err(err).Str("func", "UpdateReminder").Msg("failed to update reminder")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return reminder, nil
}

func (r *reminderRepository) DeleteReminder(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteReminderQuery, id)
	if err != nil {
		log.Err(err).Str("func", "DeleteReminder").Msg("failed to delete reminder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrReminderNotFound
	}

	return nil
}

func (r *reminderRepository) SetReminderActive(ctx context.Context, id int64, active bool) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	var reminder models.Reminder
	row := r.db.QueryRowContext(ctx, setReminderActiveQuery, id, active)
	if err := scanReminder(row, &reminder); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reminder{}, ErrReminderNotFound
		}
		log.Err(err).Str("func", "SetReminderActive").Msg("failed to set reminder active flag")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return reminder, nil
}
