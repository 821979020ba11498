package service

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/store"
	"github.com/fintrack/fintrack/models"
)

type reminderService struct {
	reminderRepository store.ReminderRepository
	logger             *logger.Logger
}

// NewReminderService constructs a ReminderService over the given
// repository.
func NewReminderService(reminderRepository store.ReminderRepository, logger *logger.Logger) ReminderService {
	return &reminderService{reminderRepository: reminderRepository, logger: logger}
}

func (r *reminderService) CreateReminder(ctx context.Context, callerID int64, reminder models.Reminder) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	if reminder.Title == "" || reminder.Date.IsZero() {
		return models.Reminder{}, ErrInvalidDataProvided
	}
	if reminder.Recurrence != nil && *reminder.Recurrence <= 0 {
		return models.Reminder{}, ErrInvalidDataProvided
	}
	reminder.UserID = callerID
	reminder.IsActive = true

	created, err := r.reminderRepository.CreateReminder(ctx, reminder)
	if err != nil {
		log.Err(err).Str("title", reminder.Title).Msg("reminder creation failed")
		return models.Reminder{}, fmt.Errorf("reminder creation failed: %w", err)
	}

	return created, nil
}

func (r *reminderService) GetReminder(ctx context.Context, callerID, id int64) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	reminder, err := r.reminderRepository.GetReminder(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("reminder lookup failed")
		return models.Reminder{}, fmt.Errorf("reminder lookup failed: %w", err)
	}
	if reminder.UserID != callerID {
		return models.Reminder{}, ErrNotAllowed
	}

	return reminder, nil
}

func (r *reminderService) ListReminders(ctx context.Context, callerID int64, active *bool, limit int) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	reminders, err := r.reminderRepository.ListReminders(ctx, callerID, active, limit)
	if err != nil {
		log.Err(err).Int64("user_id", callerID).Msg("listing reminders failed")
		return nil, fmt.Errorf("listing reminders failed: %w", err)
	}

	return reminders, nil
}

func (r *reminderService) UpdateReminder(ctx context.Context, callerID, id int64, update models.ReminderUpdate) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	reminder, err := r.GetReminder(ctx, callerID, id)
	if err != nil {
		return models.Reminder{}, err
	}

	if update.Title == nil && update.Amount == nil && update.Date == nil && update.Recurrence == nil {
		return reminder, nil
	}
	if update.Title != nil && *update.Title == "" {
		return models.Reminder{}, ErrInvalidDataProvided
	}
	if update.Recurrence != nil && *update.Recurrence <= 0 {
		return models.Reminder{}, ErrInvalidDataProvided
	}

	updated, err := r.reminderRepository.UpdateReminder(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("reminder update failed")
		return models.Reminder{}, fmt.Errorf("reminder update failed: %w", err)
	}

	return updated, nil
}

func (r *reminderService) DeleteReminder(ctx context.Context, callerID, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.GetReminder(ctx, callerID, id); err != nil {
		return err
	}

	if err := r.reminderRepository.DeleteReminder(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("reminder deletion failed")
		return fmt.Errorf("reminder deletion failed: %w", err)
	}

	return nil
}

// SetReminderActive flips the active flag. Like the goal toggle it is
// idempotent.
func (r *reminderService) SetReminderActive(ctx context.Context, callerID, id int64, active bool) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	if _, err := r.GetReminder(ctx, callerID, id); err != nil {
		return models.Reminder{}, err
	}

	reminder, err := r.reminderRepository.SetReminderActive(ctx, id, active)
	if err != nil {
		log.Err(err).Int64("id", id).Bool("active", active).Msg("setting reminder active flag failed")
		return models.Reminder{}, fmt.Errorf("setting reminder active flag failed: %w", err)
	}

	return reminder, nil
}
