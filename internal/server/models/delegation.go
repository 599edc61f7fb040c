package models

import "time"

// Delegation grants one user explicit edit access to another user's drafts
// for a single form. Rows are written by the external permission module.
type Delegation struct {
	OwnerID    string
	DelegateID string
	FormSlug   string
	CreatedAt  time.Time
}
