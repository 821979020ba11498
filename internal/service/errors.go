package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNotAllowed is returned when the caller is authenticated but the
	// target resource belongs to another user, or is a system resource
	// that no user may mutate.
	ErrNotAllowed = errors.New("not allowed")

	// ErrCategoryInUse is returned when a category cannot be deleted
	// because non-deleted transactions still reference it.
	ErrCategoryInUse = errors.New("category is referenced by transactions")

	// ErrInvalidSortParameters is returned when the sort column or order
	// falls outside the whitelist.
	ErrInvalidSortParameters = errors.New("invalid sort parameters")
)
