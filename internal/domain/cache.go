package domain

import "context"

// Cache keys in one place so they don't spread through the code.
func CacheKeyDocMeta(id DocID) string    { return "docmeta:" + id.String() }
func CacheKeyOwnerKeys(u UserID) string  { return "ownerkeys:" + u.String() }
func CacheKeyTokenJTI(jti string) string { return "jti:" + jti }

// Simple k/v interface. Implementation is Redis.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Del(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
	Ping(context.Context) error
	Close()
}
