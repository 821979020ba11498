package models

import "time"

// Reminder is an inert recurring-payment record. The API stores and serves
// reminders; due-date evaluation and notification delivery are external
// concerns. Reminders are hard-deleted.
type Reminder struct {
	ID     int64   `json:"id"`
	UserID int64   `json:"user_id"`
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`

	// Date is the (next) due date of the reminder.
	Date time.Time `json:"date"`

	// Recurrence is the repeat interval in seconds, or nil for a one-time
	// reminder.
	Recurrence *int64 `json:"recurrence"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Reminder model.
func (r Reminder) TableName() string {
	return "reminders"
}
