package signing

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateKeyPair_Encodings(t *testing.T) {
	pub, priv, err := GenerateKeyPair()
	require.NoError(t, err)

	parsedPub, err := x509.ParsePKIXPublicKey(pub)
	require.NoError(t, err)
	rsaPub, ok := parsedPub.(*rsa.PublicKey)
	require.True(t, ok, "public half must be RSA")
	require.Equal(t, 2048, rsaPub.N.BitLen())

	parsedPriv, err := x509.ParsePKCS8PrivateKey(priv)
	require.NoError(t, err)
	rsaPriv, ok := parsedPriv.(*rsa.PrivateKey)
	require.True(t, ok, "private half must be RSA")

	require.Equal(t, rsaPub.N, rsaPriv.PublicKey.N, "halves must belong to the same pair")
	require.Equal(t, rsaPub.E, rsaPriv.PublicKey.E)
}

func TestGenerateKeyPair_FreshEveryCall(t *testing.T) {
	pub1, priv1, err := GenerateKeyPair()
	require.NoError(t, err)
	pub2, priv2, err := GenerateKeyPair()
	require.NoError(t, err)

	require.False(t, bytes.Equal(pub1, pub2))
	require.False(t, bytes.Equal(priv1, priv2))
}
