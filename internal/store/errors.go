package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRefreshTokenMismatch is returned when the conditional refresh-token
	// rotation UPDATE matches no row: either the presented token is not the
	// one stored on the user row, or its token-version epoch is stale. Both
	// cases mean the token has already been consumed or invalidated.
	ErrRefreshTokenMismatch = errors.New("refresh token mismatch")

	// ErrCategoryNotFound is returned when a category lookup by id matches
	// no row.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrAccountNotFound is returned when an account lookup by id matches
	// no row.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrTransactionNotFound is returned when a transaction lookup by id
	// matches no row, or only a soft-deleted one on a path that excludes
	// soft-deleted records.
	ErrTransactionNotFound = errors.New("transaction was not found")

	// ErrGoalNotFound is returned when a goal lookup by id matches no row.
	ErrGoalNotFound = errors.New("goal was not found")

	// ErrReminderNotFound is returned when a reminder lookup by id matches
	// no row.
	ErrReminderNotFound = errors.New("reminder was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
