package models

import "time"

// Update payloads implement partial-merge semantics: a nil pointer means
// "field not provided, leave the stored value untouched"; a non-nil pointer
// overwrites it. A consequence of this encoding is that a nullable field
// cannot be cleared back to null through an update — "absent" and
// "explicitly null" are indistinguishable in the request body. That matches
// the documented behavior and is preserved deliberately.

// UserUpdate patches the principal's own account. A non-nil Password is
// re-hashed before storage.
type UserUpdate struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// CategoryUpdate patches an owned (non-system) category.
type CategoryUpdate struct {
	Name *string `json:"name"`
}

// AccountUpdate patches an owned account.
type AccountUpdate struct {
	Name    *string  `json:"name"`
	Balance *float64 `json:"balance"`
}

// TransactionUpdate patches an owned transaction. CategoryID and AccountID,
// when provided, are re-validated with the same visibility and ownership
// rules as creation before being applied. Every update, whatever fields it
// carries, stamps the transaction's UpdatedAt.
type TransactionUpdate struct {
	Title      *string    `json:"title"`
	Amount     *float64   `json:"amount"`
	CategoryID *int64     `json:"category_id"`
	AccountID  *int64     `json:"account_id"`
	DoneAt     *time.Time `json:"done_at"`
}

// GoalUpdate patches an owned goal. AccountID, when provided, must
// reference an account owned by the caller.
type GoalUpdate struct {
	AccountID    *int64     `json:"account_id"`
	TargetAmount *float64   `json:"target_amount"`
	Deadline     *time.Time `json:"deadline"`
}

// ReminderUpdate patches an owned reminder.
type ReminderUpdate struct {
	Title      *string    `json:"title"`
	Amount     *float64   `json:"amount"`
	Date       *time.Time `json:"date"`
	Recurrence *int64     `json:"recurrence"`
}
