package signing

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
)

type verifierFixture struct {
	*signerFixture
	v      *Verifier
	caller domain.Identity
	pair   domain.KeyPair
}

// signs data through the real pipeline and hands back a verifier over the
// same stores, so Verify exercises the actual stored record and blob.
func newVerifierFixture(t *testing.T, data []byte) (*verifierFixture, domain.SignedDocument) {
	t.Helper()
	ctx := context.Background()
	sfx := newSignerFixture()
	caller := testIdentity()

	kp, err := NewCustody(discardLog(), sfx.keys).Generate(ctx, caller)
	require.NoError(t, err)

	doc, err := sfx.s.Sign(ctx, caller, kp.ID, "laporan.pdf", "application/pdf", data)
	require.NoError(t, err)

	return &verifierFixture{
		signerFixture: sfx,
		v:             NewVerifier(discardLog(), sfx.docs, sfx.blobs, 15*time.Minute),
		caller:        caller,
		pair:          kp,
	}, doc
}

func TestVerifier_Verify_Valid(t *testing.T) {
	fx, doc := newVerifierFixture(t, []byte("laporan akhir"))

	res, err := fx.v.Verify(context.Background(), doc.ID, encodeB64(fx.pair.PublicKey))
	require.NoError(t, err)
	require.True(t, res.Valid)
	require.Equal(t, "laporan.pdf", res.FileName)
	require.Equal(t, doc.Signature, res.Signature)
	require.NotNil(t, res.SignedBy)
	require.Equal(t, fx.caller, *res.SignedBy, "signer snapshot comes from the record")
	require.Contains(t, res.FileURL, doc.StorageKey, "locator points at the verified object")
}

func TestVerifier_Verify_TamperedBytes(t *testing.T) {
	fx, doc := newVerifierFixture(t, []byte("original content"))

	// Swap the stored bytes behind the record's back.
	fx.blobs.objects[doc.StorageKey] = []byte("doctored content")

	res, err := fx.v.Verify(context.Background(), doc.ID, encodeB64(fx.pair.PublicKey))
	require.NoError(t, err, "a mismatch is a result, not an error")
	require.False(t, res.Valid)
	require.Nil(t, res.SignedBy)
	require.Empty(t, res.FileURL, "no locator without a valid signature")
}

func TestVerifier_Verify_WrongKey(t *testing.T) {
	fx, doc := newVerifierFixture(t, []byte("content"))

	otherPub, _, err := GenerateKeyPair()
	require.NoError(t, err)

	res, err := fx.v.Verify(context.Background(), doc.ID, encodeB64(otherPub))
	require.NoError(t, err)
	require.False(t, res.Valid)
	require.Empty(t, res.FileURL)
}

func TestVerifier_Verify_BadKeyEncoding(t *testing.T) {
	fx, doc := newVerifierFixture(t, []byte("content"))
	ctx := context.Background()

	_, err := fx.v.Verify(ctx, doc.ID, "!!! not base64 !!!")
	require.ErrorIs(t, err, domain.ErrInvalidKeyFormat)

	// Valid base64 wrapping garbage DER fails the same way.
	_, err = fx.v.Verify(ctx, doc.ID, base64.StdEncoding.EncodeToString([]byte("garbage der")))
	require.ErrorIs(t, err, domain.ErrInvalidKeyFormat)
}

func TestVerifier_Verify_DocumentMissing(t *testing.T) {
	fx, _ := newVerifierFixture(t, []byte("content"))

	_, err := fx.v.Verify(context.Background(), uuid.New(), encodeB64(fx.pair.PublicKey))
	require.ErrorIs(t, err, domain.ErrDocNotFound)
}

func TestVerifier_Verify_FetchFailure(t *testing.T) {
	fx, doc := newVerifierFixture(t, []byte("content"))

	fx.blobs.failFetch = errors.New("connection reset")
	_, err := fx.v.Verify(context.Background(), doc.ID, encodeB64(fx.pair.PublicKey))
	require.ErrorIs(t, err, domain.ErrStorage)
}

func TestVerifier_Verify_PresignFailure(t *testing.T) {
	fx, doc := newVerifierFixture(t, []byte("content"))

	fx.blobs.failPresign = errors.New("presign rejected")
	_, err := fx.v.Verify(context.Background(), doc.ID, encodeB64(fx.pair.PublicKey))
	require.ErrorIs(t, err, domain.ErrStorage)
}

func TestParsePublicKey_RoundTrip(t *testing.T) {
	pub, _, err := GenerateKeyPair()
	require.NoError(t, err)

	parsed, err := ParsePublicKey(encodeB64(pub))
	require.NoError(t, err)
	require.Equal(t, 2048, parsed.N.BitLen())
}
