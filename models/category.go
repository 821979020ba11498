package models

import "time"

// Category classifies transactions. A category with a nil UserID is a
// system category: readable by every user, mutable and deletable by none
// through the API.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// UserID is the owning user, or nil for a system category.
	UserID *int64 `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}

// IsSystem reports whether the category is a system category (no owner).
func (c Category) IsSystem() bool {
	return c.UserID == nil
}

// VisibleTo reports whether the category may be read by the given user:
// system categories are visible to everyone, owned categories only to
// their owner.
func (c Category) VisibleTo(userID int64) bool {
	return c.UserID == nil || *c.UserID == userID
}

// OwnedBy reports whether the category is mutable by the given user.
// System categories are owned by no one.
func (c Category) OwnedBy(userID int64) bool {
	return c.UserID != nil && *c.UserID == userID
}
