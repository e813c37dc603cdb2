package domain

import (
	"time"

	"github.com/google/uuid"
)

// Base identifiers
type UserID = uuid.UUID
type KeyID = uuid.UUID
type DocID = uuid.UUID

// Registered account
type User struct {
	ID        UserID    `json:"id"`
	Email     string    `json:"email"`
	PassHash  []byte    `json:"-"` // never exposed
	CreatedAt time.Time `json:"created_at"`
}

// Identity is the authenticated caller as seen by the core: the minimal
// {uid, email} shape carried in JWT claims and snapshotted into documents.
type Identity struct {
	UID   UserID `json:"uid"`
	Email string `json:"email"`
}

// KeyPair is an RSA key pair under server custody.
// PublicKey is SPKI DER, PrivateKey is PKCS#8 DER; both travel base64-encoded.
// PrivateKey is written once at creation, never mutated, never listed.
type KeyPair struct {
	ID         KeyID     `json:"key_id"`
	OwnerID    UserID    `json:"-"`
	PublicKey  []byte    `json:"public_key"`
	PrivateKey []byte    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// SignedDocument binds a stored file to its signature and signer.
// FileName is the human-facing name; StorageKey is the collision-resistant
// blob key the verifier re-fetches bytes by. SignedBy is a value snapshot,
// not a live reference: old signatures stay interpretable if the account changes.
type SignedDocument struct {
	ID         DocID     `json:"document_id"`
	FileName   string    `json:"file_name"`
	StorageKey string    `json:"-"`
	Signature  []byte    `json:"signature"` // raw signature bytes, base64 in JSON
	SignedBy   Identity  `json:"signed_by"`
	SignedAt   time.Time `json:"signed_at"`
}

// VerificationResult is the outcome of a verification run.
// Valid=false is a successful computation, not an error; SignedBy and FileURL
// are populated only when the signature checks out.
type VerificationResult struct {
	Valid     bool      `json:"valid"`
	FileName  string    `json:"file_name"`
	Signature []byte    `json:"signature"`
	SignedBy  *Identity `json:"signed_by,omitempty"`
	FileURL   string    `json:"file_url,omitempty"`
}
