package http

import (
	"errors"
	"net/http"

	"github.com/fintrack/fintrack/internal/service"
	"github.com/fintrack/fintrack/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusUnprocessableEntity,
	service.ErrInvalidSortParameters:   http.StatusUnprocessableEntity,
	service.ErrCategoryInUse:           http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotAllowed:              http.StatusForbidden,

	store.ErrLoginAlreadyExists:   http.StatusConflict,
	store.ErrRefreshTokenMismatch: http.StatusUnauthorized,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrCategoryNotFound:     http.StatusNotFound,
	store.ErrAccountNotFound:      http.StatusNotFound,
	store.ErrTransactionNotFound:  http.StatusNotFound,
	store.ErrGoalNotFound:         http.StatusNotFound,
	store.ErrReminderNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
