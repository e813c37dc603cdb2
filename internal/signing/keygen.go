package signing

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
)

const keyBits = 2048

// GenerateKeyPair produces a fresh RSA-2048 pair in the canonical wire
// encodings: SPKI DER for the public half, PKCS#8 DER for the private half.
// crypto/rand is the only randomness source; failure here is unrecoverable.
func GenerateKeyPair() (pub, priv []byte, err error) {
	key, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("rsa generate: %w", err)
	}
	pub, err = x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal spki: %w", err)
	}
	priv, err = x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal pkcs8: %w", err)
	}
	return pub, priv, nil
}
