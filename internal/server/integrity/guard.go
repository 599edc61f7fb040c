// Package integrity signs draft records and verifies them on load, so the
// server can detect tampering or corruption before trusting restored data
// back into a business form.
package integrity

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
)

// hkdfInfo separates the signing key from any other key derived from the
// same configured secret.
const hkdfInfo = "draftkeeper/record-signature/v1"

// Guard computes and checks HMAC-SHA256 signatures over the canonical
// serialization of a draft record. The signing key is derived from the
// server secret and never leaves the process.
type Guard struct {
	key []byte
}

// NewGuard derives the signing key from the configured secret via
// HKDF-SHA256.
func NewGuard(secret []byte) (*Guard, error) {
	key := make([]byte, sha256.Size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("deriving signing key: %w", err)
	}
	return &Guard{key: key}, nil
}

// Sign computes the signature over (payload, step, version, schemaVersion,
// key). The payload is canonicalized first, so two JSON encodings of the
// same object always sign identically regardless of map key order.
func (g *Guard) Sign(key models.DraftKey, payload []byte, step, version, schemaVersion int64) ([]byte, error) {
	mac := hmac.New(sha256.New, g.key)
	writeBytes(mac, canonicalPayload(payload))
	writeInt(mac, step)
	writeInt(mac, version)
	writeInt(mac, schemaVersion)
	writeBytes(mac, []byte(key.String()))
	return mac.Sum(nil), nil
}

// Verify recomputes the record's signature and compares in constant time.
// A mismatch yields common.ErrCorrupted; the caller must then treat the
// record as absent, not attempt partial recovery.
func (g *Guard) Verify(record *models.DraftRecord) error {
	want, err := g.Sign(record.Key, record.Payload, record.Step, record.Version, record.SchemaVersion)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(want, record.Signature) != 1 {
		return common.ErrCorrupted
	}
	return nil
}

// canonicalPayload re-encodes a JSON payload through map-typed values:
// encoding/json sorts object keys on marshal, which yields a stable byte
// form. Payloads that are not valid JSON are signed as raw bytes.
func canonicalPayload(payload []byte) []byte {
	var v any
	if err := json.Unmarshal(payload, &v); err != nil {
		return payload
	}
	out, err := json.Marshal(v)
	if err != nil {
		return payload
	}
	return out
}

// writeBytes length-frames the value so adjacent fields can never be
// reinterpreted as each other.
func writeBytes(w io.Writer, b []byte) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(b)))
	w.Write(n[:])
	w.Write(b)
}

func writeInt(w io.Writer, v int64) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(v))
	w.Write(n[:])
}
