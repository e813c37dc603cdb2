package token

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueParse(t *testing.T) {
	ctx := context.Background()
	m := New("test-secret", "signsrv", time.Hour)
	uid := uuid.New()

	raw, issued, err := m.Issue(ctx, uid, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.NotEmpty(t, issued.JTI)

	parsed, err := m.Parse(ctx, raw)
	require.NoError(t, err)
	require.Equal(t, uid, parsed.UserID)
	require.Equal(t, "user@example.com", parsed.Email)
	require.Equal(t, issued.JTI, parsed.JTI)
	require.WithinDuration(t, issued.ExpiresAt, parsed.ExpiresAt, time.Second)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	ctx := context.Background()
	raw, _, err := New("secret-a", "signsrv", time.Hour).Issue(ctx, uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = New("secret-b", "signsrv", time.Hour).Parse(ctx, raw)
	require.Error(t, err)
}

func TestManager_Parse_Expired(t *testing.T) {
	ctx := context.Background()
	m := New("test-secret", "signsrv", -time.Minute)

	raw, _, err := m.Issue(ctx, uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = m.Parse(ctx, raw)
	require.Error(t, err)
}

func TestManager_Parse_Garbage(t *testing.T) {
	m := New("test-secret", "signsrv", time.Hour)
	_, err := m.Parse(context.Background(), "not.a.jwt")
	require.Error(t, err)
}
