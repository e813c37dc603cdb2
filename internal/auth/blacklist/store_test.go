package blacklist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	data map[string]int // key -> ttl seconds as handed to SetNX
}

func (f *fakeKV) SetNX(_ context.Context, key string, _ []byte, ttlSeconds int) (bool, error) {
	if _, ok := f.data[key]; ok {
		return false, nil
	}
	f.data[key] = ttlSeconds
	return true, nil
}

func (f *fakeKV) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.data[key]
	return ok, nil
}

func TestStore_RevokeThenCheck(t *testing.T) {
	ctx := context.Background()
	kv := &fakeKV{data: map[string]int{}}
	s := NewStore(kv)

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, revoked)

	// Unrelated jti stays clean.
	revoked, err = s.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestStore_Revoke_PastExpiry(t *testing.T) {
	ctx := context.Background()
	kv := &fakeKV{data: map[string]int{}}
	s := NewStore(kv)

	// An already-expired token still gets a short positive TTL.
	require.NoError(t, s.Revoke(ctx, "jti-old", time.Now().Add(-time.Hour)))
	for _, ttl := range kv.data {
		require.Positive(t, ttl)
	}
}
