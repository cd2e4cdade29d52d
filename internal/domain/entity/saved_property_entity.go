package entity

import "time"

// SavedProperty links a user to a bookmarked property.
// (UserID, PropertyID) is unique.
type SavedProperty struct {
	ID         string
	UserID     string
	PropertyID string
	SavedAt    time.Time
}
