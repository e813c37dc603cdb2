package signing

import (
	"bytes"
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"log"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
)

// Signer runs the signing pipeline: resolve and authorize the key, sign the
// exact byte stream, upload the bytes, write the document record. Each step
// fails into one taxonomy error and short-circuits the rest.
type Signer struct {
	log     *log.Logger
	custody *Custody
	docs    domain.DocumentsRepo
	blobs   domain.BlobStorage
}

func NewSigner(logger *log.Logger, custody *Custody, docs domain.DocumentsRepo, blobs domain.BlobStorage) *Signer {
	return &Signer{log: logger, custody: custody, docs: docs, blobs: blobs}
}

// Sign signs data with the caller's stored key and persists the signed
// document. The signature is deterministic per (key, bytes): signing the
// same input twice yields distinct documents with identical signatures.
// Empty data is fine and produces a valid signature over zero bytes.
func (s *Signer) Sign(ctx context.Context, caller domain.Identity, keyID domain.KeyID, fileName, mime string, data []byte) (domain.SignedDocument, error) {
	priv, err := s.custody.PrivateKeyFor(ctx, keyID, caller.UID)
	if err != nil {
		return domain.SignedDocument{}, err
	}

	sig, err := SignBytes(priv, data)
	if err != nil {
		return domain.SignedDocument{}, fmt.Errorf("%w: sign: %v", domain.ErrUnexpected, err)
	}

	put, err := s.blobs.Put(ctx, bytes.NewReader(data), fileName, mime)
	if err != nil {
		return domain.SignedDocument{}, fmt.Errorf("%w: blob put: %v", domain.ErrStorage, err)
	}

	doc, err := s.docs.CreateDocument(ctx, domain.SignedDocument{
		FileName:   fileName,
		StorageKey: put.StorageKey,
		Signature:  sig,
		SignedBy:   caller,
	})
	if err != nil {
		// Bytes are durably stored but the record write failed: the blob is
		// orphaned. Reported for reconciliation, never deleted here.
		s.log.Printf("orphaned blob: record write failed key=%s err=%v", put.StorageKey, err)
		return domain.SignedDocument{}, err
	}

	s.log.Printf("signed doc=%s key=%s size=%d by=%s", doc.ID, keyID, put.Size, caller.UID)
	return doc, nil
}

// SignBytes computes the RSA PKCS#1 v1.5 signature over SHA-256(data).
// The algorithm is fixed; the verifier recomputes with the same pair.
func SignBytes(priv *rsa.PrivateKey, data []byte) ([]byte, error) {
	h := sha256.Sum256(data)
	return rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, h[:])
}
