package signing

import (
	"context"
	"crypto/x509"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
)

func TestCustody_Generate(t *testing.T) {
	ctx := context.Background()
	keys := newFakeKeys()
	c := NewCustody(discardLog(), keys)
	owner := testIdentity()

	kp, err := c.Generate(ctx, owner)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, kp.ID)
	require.Equal(t, owner.UID, kp.OwnerID)
	require.NotEmpty(t, kp.PublicKey)
	require.NotEmpty(t, kp.PrivateKey, "create response carries the private half")

	// The stored pair parses back to the same key.
	_, err = x509.ParsePKCS8PrivateKey(kp.PrivateKey)
	require.NoError(t, err)
}

func TestCustody_ListByOwner_PublicOnly(t *testing.T) {
	ctx := context.Background()
	keys := newFakeKeys()
	c := NewCustody(discardLog(), keys)
	owner := testIdentity()
	other := testIdentity()

	mine, err := c.Generate(ctx, owner)
	require.NoError(t, err)
	_, err = c.Generate(ctx, other)
	require.NoError(t, err)

	list, err := c.ListByOwner(ctx, owner.UID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, mine.ID, list[0].ID)
	require.Equal(t, mine.PublicKey, list[0].PublicKey)
	require.Nil(t, list[0].PrivateKey, "private material never appears after creation")
}

func TestCustody_AuthorizeOwner(t *testing.T) {
	ctx := context.Background()
	keys := newFakeKeys()
	c := NewCustody(discardLog(), keys)
	owner := testIdentity()
	stranger := testIdentity()

	kp, err := c.Generate(ctx, owner)
	require.NoError(t, err)

	ok, err := c.AuthorizeOwner(ctx, kp.ID, owner.UID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.AuthorizeOwner(ctx, kp.ID, stranger.UID)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = c.AuthorizeOwner(ctx, uuid.New(), owner.UID)
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestCustody_PrivateKeyFor(t *testing.T) {
	ctx := context.Background()
	keys := newFakeKeys()
	c := NewCustody(discardLog(), keys)
	owner := testIdentity()

	kp, err := c.Generate(ctx, owner)
	require.NoError(t, err)

	priv, err := c.PrivateKeyFor(ctx, kp.ID, owner.UID)
	require.NoError(t, err)

	pub, err := ParsePublicKey(encodeB64(kp.PublicKey))
	require.NoError(t, err)
	require.Equal(t, pub.N, priv.PublicKey.N, "resolved key matches the stored public half")
}

func TestCustody_PrivateKeyFor_NotOwner(t *testing.T) {
	ctx := context.Background()
	keys := newFakeKeys()
	c := NewCustody(discardLog(), keys)

	kp, err := c.Generate(ctx, testIdentity())
	require.NoError(t, err)

	_, err = c.PrivateKeyFor(ctx, kp.ID, testIdentity().UID)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCustody_PrivateKeyFor_Missing(t *testing.T) {
	c := NewCustody(discardLog(), newFakeKeys())

	_, err := c.PrivateKeyFor(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestCustody_PrivateKeyFor_CorruptMaterial(t *testing.T) {
	ctx := context.Background()
	keys := newFakeKeys()
	c := NewCustody(discardLog(), keys)
	owner := testIdentity()

	kp, err := keys.CreateKeyPair(ctx, domain.KeyPair{
		OwnerID:    owner.UID,
		PublicKey:  []byte("junk"),
		PrivateKey: []byte("not pkcs8 at all"),
	})
	require.NoError(t, err)

	_, err = c.PrivateKeyFor(ctx, kp.ID, owner.UID)
	require.ErrorIs(t, err, domain.ErrInvalidKeyFormat)
}
