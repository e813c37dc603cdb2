package signing

import (
	"context"
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
)

// Verifier checks a stored signature against server-fetched file bytes.
// Client-supplied content is never trusted: bytes always come back from the
// blob store by the key recorded at sign time, so controlling the client is
// not enough to substitute a forged file.
type Verifier struct {
	log    *log.Logger
	docs   domain.DocumentsRepo
	blobs  domain.BlobStorage
	urlTTL time.Duration
}

func NewVerifier(logger *log.Logger, docs domain.DocumentsRepo, blobs domain.BlobStorage, urlTTL time.Duration) *Verifier {
	return &Verifier{log: logger, docs: docs, blobs: blobs, urlTTL: urlTTL}
}

// Verify decides whether publicKeyB64's private counterpart produced the
// document's stored signature. A mismatch is a successful Valid=false
// result; errors mean the check could not run at all.
func (v *Verifier) Verify(ctx context.Context, docID domain.DocID, publicKeyB64 string) (domain.VerificationResult, error) {
	doc, err := v.docs.DocumentByID(ctx, docID)
	if err != nil {
		return domain.VerificationResult{}, err
	}

	pub, err := ParsePublicKey(publicKeyB64)
	if err != nil {
		return domain.VerificationResult{}, err
	}

	data, err := v.blobs.Fetch(ctx, doc.StorageKey)
	if err != nil {
		return domain.VerificationResult{}, fmt.Errorf("%w: blob fetch: %v", domain.ErrStorage, err)
	}

	res := domain.VerificationResult{
		FileName:  doc.FileName,
		Signature: doc.Signature,
	}
	if !VerifyBytes(pub, data, doc.Signature) {
		v.log.Printf("verify doc=%s: signature mismatch", docID)
		return res, nil
	}

	url, err := v.blobs.PresignGet(ctx, doc.StorageKey, doc.FileName, v.urlTTL)
	if err != nil {
		return domain.VerificationResult{}, fmt.Errorf("%w: presign: %v", domain.ErrStorage, err)
	}

	signedBy := doc.SignedBy
	res.Valid = true
	res.SignedBy = &signedBy
	res.FileURL = url
	v.log.Printf("verify doc=%s: valid, signed_by=%s", docID, signedBy.UID)
	return res, nil
}

// ParsePublicKey decodes base64 SPKI DER into an RSA public key.
func ParsePublicKey(b64 string) (*rsa.PublicKey, error) {
	der, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", domain.ErrInvalidKeyFormat, err)
	}
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse spki: %v", domain.ErrInvalidKeyFormat, err)
	}
	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", domain.ErrInvalidKeyFormat)
	}
	return pub, nil
}

// VerifyBytes recomputes SHA-256(data) and checks sig with pub. Same fixed
// algorithm as SignBytes; anything else fails verification.
func VerifyBytes(pub *rsa.PublicKey, data, sig []byte) bool {
	h := sha256.Sum256(data)
	return rsa.VerifyPKCS1v15(pub, crypto.SHA256, h[:], sig) == nil
}
