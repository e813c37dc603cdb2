package signing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
)

type signerFixture struct {
	keys  *fakeKeys
	docs  *fakeDocs
	blobs *fakeBlobs
	s     *Signer
}

func newSignerFixture() *signerFixture {
	keys := newFakeKeys()
	docs := newFakeDocs()
	blobs := newFakeBlobs()
	custody := NewCustody(discardLog(), keys)
	return &signerFixture{
		keys:  keys,
		docs:  docs,
		blobs: blobs,
		s:     NewSigner(discardLog(), custody, docs, blobs),
	}
}

func TestSigner_Sign_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fx := newSignerFixture()
	caller := testIdentity()

	kp, err := NewCustody(discardLog(), fx.keys).Generate(ctx, caller)
	require.NoError(t, err)

	data := []byte("surat perjanjian kerja sama\n")
	doc, err := fx.s.Sign(ctx, caller, kp.ID, "kontrak.pdf", "application/pdf", data)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, doc.ID)
	require.Equal(t, "kontrak.pdf", doc.FileName)
	require.Equal(t, caller, doc.SignedBy)
	require.NotEmpty(t, doc.Signature)

	// The exact uploaded bytes landed in the blob store under the record's key.
	stored, err := fx.blobs.Fetch(ctx, doc.StorageKey)
	require.NoError(t, err)
	require.Equal(t, data, stored)

	// The signature checks out against the pair's public half.
	pub, err := ParsePublicKey(encodeB64(kp.PublicKey))
	require.NoError(t, err)
	require.True(t, VerifyBytes(pub, data, doc.Signature))

	// And fails against anything else.
	require.False(t, VerifyBytes(pub, []byte("other bytes"), doc.Signature))
}

func TestSigner_Sign_SameBytesSameSignature(t *testing.T) {
	ctx := context.Background()
	fx := newSignerFixture()
	caller := testIdentity()

	kp, err := NewCustody(discardLog(), fx.keys).Generate(ctx, caller)
	require.NoError(t, err)

	data := []byte("identical payload")
	first, err := fx.s.Sign(ctx, caller, kp.ID, "a.txt", "text/plain", data)
	require.NoError(t, err)
	second, err := fx.s.Sign(ctx, caller, kp.ID, "a.txt", "text/plain", data)
	require.NoError(t, err)

	// PKCS#1 v1.5 is deterministic: same key, same bytes, same signature.
	require.Equal(t, first.Signature, second.Signature)
	// But each upload is its own document under its own storage key.
	require.NotEqual(t, first.ID, second.ID)
	require.NotEqual(t, first.StorageKey, second.StorageKey)
}

func TestSigner_Sign_EmptyFile(t *testing.T) {
	ctx := context.Background()
	fx := newSignerFixture()
	caller := testIdentity()

	kp, err := NewCustody(discardLog(), fx.keys).Generate(ctx, caller)
	require.NoError(t, err)

	doc, err := fx.s.Sign(ctx, caller, kp.ID, "empty.bin", "application/octet-stream", nil)
	require.NoError(t, err)

	pub, err := ParsePublicKey(encodeB64(kp.PublicKey))
	require.NoError(t, err)
	require.True(t, VerifyBytes(pub, nil, doc.Signature), "zero bytes sign and verify like any other input")
}

func TestSigner_Sign_NotOwner(t *testing.T) {
	ctx := context.Background()
	fx := newSignerFixture()

	kp, err := NewCustody(discardLog(), fx.keys).Generate(ctx, testIdentity())
	require.NoError(t, err)

	_, err = fx.s.Sign(ctx, testIdentity(), kp.ID, "f.txt", "text/plain", []byte("x"))
	require.ErrorIs(t, err, domain.ErrForbidden)
	require.Empty(t, fx.blobs.objects, "nothing uploaded on a refused key")
	require.Empty(t, fx.docs.docs)
}

func TestSigner_Sign_KeyMissing(t *testing.T) {
	fx := newSignerFixture()

	_, err := fx.s.Sign(context.Background(), testIdentity(), uuid.New(), "f.txt", "text/plain", []byte("x"))
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
	require.Empty(t, fx.blobs.objects)
}

func TestSigner_Sign_BlobFailure(t *testing.T) {
	ctx := context.Background()
	fx := newSignerFixture()
	caller := testIdentity()

	kp, err := NewCustody(discardLog(), fx.keys).Generate(ctx, caller)
	require.NoError(t, err)

	fx.blobs.failPut = errors.New("bucket unreachable")
	_, err = fx.s.Sign(ctx, caller, kp.ID, "f.txt", "text/plain", []byte("x"))
	require.ErrorIs(t, err, domain.ErrStorage)
	require.Empty(t, fx.docs.docs, "record write never runs after a failed upload")
}

func TestSigner_Sign_RecordFailureLeavesBlob(t *testing.T) {
	ctx := context.Background()
	fx := newSignerFixture()
	caller := testIdentity()

	kp, err := NewCustody(discardLog(), fx.keys).Generate(ctx, caller)
	require.NoError(t, err)

	fx.docs.failCreate = domain.ErrStorage
	_, err = fx.s.Sign(ctx, caller, kp.ID, "f.txt", "text/plain", []byte("x"))
	require.ErrorIs(t, err, domain.ErrStorage)
	// The blob stays put for reconciliation; signing never deletes.
	require.Len(t, fx.blobs.objects, 1)
}
