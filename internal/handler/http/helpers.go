package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/go-chi/chi/v5"
)

// handleError logs the error and writes the mapped status code with a
// short message. Internal errors never leak their detail to the client.
func handleError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	log.Err(err).Msg(msg)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(http.StatusInternalServerError), status)
		return
	}
	http.Error(w, msg+": "+err.Error(), status)
}

// decodeJSON parses the request body into dst. On failure it writes a 400
// response and reports false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log := logger.FromRequest(r)
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}

// callerID extracts the authenticated user id stored by the auth
// middleware. A missing id means the handler was wired outside the
// protected group; respond 401 rather than panic.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// pathID parses the {id} URL parameter. A non-numeric id is
// indistinguishable from an unknown resource, so it yields 404.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func queryInt64Ptr(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func queryFloatPtr(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func queryBoolPtr(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// queryTimePtr accepts RFC 3339 timestamps and plain dates.
func queryTimePtr(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	if value, err := time.Parse(time.RFC3339, raw); err == nil {
		return &value, nil
	}
	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
