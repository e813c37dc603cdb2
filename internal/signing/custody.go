package signing

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"log"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
)

// Custody owns every read of stored private key material. Handlers and the
// signer go through it; the repo's KeyPairByID is never called elsewhere.
type Custody struct {
	log  *log.Logger
	keys domain.KeysRepo
}

func NewCustody(logger *log.Logger, keys domain.KeysRepo) *Custody {
	return &Custody{log: logger, keys: keys}
}

// Generate creates a fresh pair for owner and persists it. The returned
// KeyPair still carries the private material: the create response is the
// one and only time it leaves the server.
func (c *Custody) Generate(ctx context.Context, owner domain.Identity) (domain.KeyPair, error) {
	pub, priv, err := GenerateKeyPair()
	if err != nil {
		c.log.Printf("keygen failed: %v", err)
		return domain.KeyPair{}, fmt.Errorf("%w: keygen: %v", domain.ErrUnexpected, err)
	}
	kp, err := c.keys.CreateKeyPair(ctx, domain.KeyPair{
		OwnerID:    owner.UID,
		PublicKey:  pub,
		PrivateKey: priv,
	})
	if err != nil {
		return domain.KeyPair{}, err
	}
	c.log.Printf("generated key pair id=%s owner=%s", kp.ID, owner.UID)
	return kp, nil
}

// ListByOwner returns the owner's pairs, public fields only.
func (c *Custody) ListByOwner(ctx context.Context, owner domain.UserID) ([]domain.KeyPair, error) {
	return c.keys.KeyPairsByOwner(ctx, owner)
}

// AuthorizeOwner reports whether caller owns the key. ErrKeyNotFound when
// the key does not exist at all.
func (c *Custody) AuthorizeOwner(ctx context.Context, keyID domain.KeyID, caller domain.UserID) (bool, error) {
	kp, err := c.keys.KeyPairByID(ctx, keyID)
	if err != nil {
		return false, err
	}
	return kp.OwnerID == caller, nil
}

// PrivateKeyFor resolves keyID, enforces ownership and decodes the stored
// PKCS#8 material. The single authorization choke point in front of all
// stored private keys.
func (c *Custody) PrivateKeyFor(ctx context.Context, keyID domain.KeyID, caller domain.UserID) (*rsa.PrivateKey, error) {
	kp, err := c.keys.KeyPairByID(ctx, keyID)
	if err != nil {
		return nil, err
	}
	if kp.OwnerID != caller {
		c.log.Printf("ownership check failed: key=%s caller=%s", keyID, caller)
		return nil, domain.ErrForbidden
	}
	parsed, err := x509.ParsePKCS8PrivateKey(kp.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: parse pkcs8: %v", domain.ErrInvalidKeyFormat, err)
	}
	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", domain.ErrInvalidKeyFormat)
	}
	return priv, nil
}
