package models

import "time"

// Goal is a savings target tied to one of the owner's accounts.
// Goals are hard-deleted; there is no soft-delete state.
type Goal struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	AccountID    int64     `json:"account_id"`
	TargetAmount float64   `json:"target_amount"`
	Deadline     time.Time `json:"deadline"`
	IsCompleted  bool      `json:"is_completed"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Goal model.
func (g Goal) TableName() string {
	return "goals"
}
