// Package models defines the server-side draft types: the composite draft
// key, the ephemeral checkpoint record, and the immutable durable version.
package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
)

// DraftKey identifies a draft: one user, one form, one (possibly new) object.
// ObjectID is empty for "new record" drafts.
type DraftKey struct {
	UserID   string
	FormSlug string
	ObjectID string
}

// String renders the key as a single collision-free store key. Keys of
// different users never collide because every part is separator-joined.
func (k DraftKey) String() string {
	return strings.Join([]string{k.UserID, k.FormSlug, k.ObjectID}, common.KeySeparator)
}

// DraftRecord is one persisted checkpoint of an in-progress form. A record
// whose ExpiresAt is in the past is logically absent even if the store still
// holds it.
type DraftRecord struct {
	Key           DraftKey
	Payload       []byte
	Step          int64
	Version       int64
	SchemaVersion int64
	Signature     []byte
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ExpiresAt     time.Time
}

// Expired reports whether the record is past its TTL at the given instant.
func (r *DraftRecord) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}
