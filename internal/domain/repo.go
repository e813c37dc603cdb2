package domain

import "context"

type UsersRepo interface {
	Close()
	Ping(context.Context) error
	CreateUser(ctx context.Context, email string, passHash []byte) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, id UserID) (User, error)
}

// KeysRepo persists key pairs. Rows are insert-only: there is no update or
// delete path, the private key column is written exactly once.
type KeysRepo interface {
	// CreateKeyPair persists a fresh pair and returns it with id/created_at set.
	CreateKeyPair(ctx context.Context, kp KeyPair) (KeyPair, error)
	// KeyPairByID returns the full pair, private material included.
	// Only the signing engine may call this, and only behind an ownership check.
	KeyPairByID(ctx context.Context, id KeyID) (KeyPair, error)
	// KeyPairsByOwner returns public fields only (PrivateKey left nil).
	KeyPairsByOwner(ctx context.Context, owner UserID) ([]KeyPair, error)
}

// DocumentsRepo persists signed-document records; the single source of truth
// consulted at verify time. Records are immutable once written.
type DocumentsRepo interface {
	CreateDocument(ctx context.Context, doc SignedDocument) (SignedDocument, error)
	DocumentByID(ctx context.Context, id DocID) (SignedDocument, error)
}
