package models

import "time"

// Whitelisted sort columns and orders for the paginated transaction list.
// Any other value is a validation failure, not a silent fallback.
const (
	SortByID     = "id"
	SortByTitle  = "title"
	SortByAmount = "amount"
	SortByDoneAt = "done_at"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// TransactionPageQuery describes one page of the transaction list.
type TransactionPageQuery struct {
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// TransactionFilter holds the optional, AND-combined predicates of the
// id-only filter endpoint. Nil pointers and the empty Search string mean
// "predicate not applied".
type TransactionFilter struct {
	Search     string
	CategoryID *int64
	AccountID  *int64
	FromDate   *time.Time
	ToDate     *time.Time
	MinAmount  *float64
	MaxAmount  *float64
}
