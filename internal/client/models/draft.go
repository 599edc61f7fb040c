// Package models defines client-side data models used by the DraftKeeper CLI.
package models

import (
	"time"
)

// DraftKey identifies one draft on this client. The user component is
// implicit: the server derives it from the access token.
type DraftKey struct {
	FormSlug string
	ObjectID string
}

// QueueEntry is one checkpoint waiting in the local offline queue. Seq is
// assigned by SQLite and fixes the replay order.
type QueueEntry struct {
	Seq           int64
	FormSlug      string
	ObjectID      string
	Payload       []byte
	Step          int64
	SchemaVersion int64
	QueuedAt      time.Time
}

// Key returns the draft key of the queued checkpoint.
func (e *QueueEntry) Key() DraftKey {
	return DraftKey{FormSlug: e.FormSlug, ObjectID: e.ObjectID}
}

// RemoteDraft is a server-side draft as seen by Load.
type RemoteDraft struct {
	Payload       []byte
	Step          int64
	Version       int64
	SchemaVersion int64
}
