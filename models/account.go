package models

import "time"

// Account is a money container owned by exactly one user. The balance is a
// free-standing signed value; it is not derived from transactions and no
// invariant forces it to stay non-negative.
type Account struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Balance   float64   `json:"balance"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
