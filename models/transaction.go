package models

import "time"

// Transaction is a single money movement. It references a category that
// must be visible to its owner (system or owned) and an account that must
// be owned by its owner.
//
// Deletion is soft: IsDeleted flips to true and UpdatedAt is stamped, so
// that incremental-sync clients can observe the deletion through the
// change feed. Soft-deleted rows are excluded from every other read path.
type Transaction struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Amount     float64 `json:"amount"`
	UserID     int64   `json:"user_id"`
	CategoryID int64   `json:"category_id"`
	AccountID  int64   `json:"account_id"`

	// DoneAt is when the transaction happened. Defaults to the creation
	// time when the client does not supply it.
	DoneAt time.Time `json:"done_at"`

	// UpdatedAt is stamped on every mutation, including soft-delete.
	UpdatedAt time.Time `json:"updated_at"`

	// IsDeleted marks a soft-deleted row. Never exposed: deleted rows are
	// filtered out of all API responses except the change feed, which
	// returns ids only.
	IsDeleted bool `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}
