package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Username string `json:"username"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// RefreshToken is the currently valid refresh token for this user,
	// or nil when no session is active. Exactly one refresh token is live
	// per user at any time; issuing a new one overwrites this value.
	RefreshToken *string `json:"-"`

	// TokenVersion is an integer epoch incremented on every logout and
	// every successful refresh-token exchange. Any refresh token carrying
	// a stale version is invalid.
	TokenVersion int64 `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials carries the login/password pair presented during
// registration and login. The password is plaintext in transit only and is
// hashed before it ever reaches the persistence layer.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
