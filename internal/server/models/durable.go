package models

import "time"

// DurableVersion is an immutable archived snapshot of a draft, created only
// by explicit promotion. PriorHash links to the previous snapshot for the
// same key (or the key-genesis marker), forming a verifiable hash chain.
// Large payloads may live in object storage instead of the row; then
// StorageKey is set and Payload is empty.
type DurableVersion struct {
	ID            string
	UserID        string
	FormSlug      string
	ObjectID      string
	Payload       []byte
	StorageKey    string
	Step          int64
	Version       int64
	SchemaVersion int64
	PriorHash     []byte
	RecordHash    []byte
	CreatedAt     time.Time
}

// Key returns the draft key this snapshot belongs to.
func (v *DurableVersion) Key() DraftKey {
	return DraftKey{UserID: v.UserID, FormSlug: v.FormSlug, ObjectID: v.ObjectID}
}
