package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/goprice/base/ctx"
)

const (
	// Forever keeps the key without expiration
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")
	// ErrNoTTL is returned by TTL when the key exists without expiration
	ErrNoTTL = errors.New("redis key has no ttl")
	// ErrNoPool is returned when no pool is configured
	ErrNoPool = errors.New("redis pool not configured")
)

// Service is the subset of redis commands used for caching
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, ks ...string) (int, error)
	Exists(c ctx.Ctx, key string) (bool, error)
	// TTL returns the remaining seconds of the key
	TTL(c ctx.Ctx, key string) (int, error)
	Incrby(c ctx.Ctx, key string, val int) (int64, error)
}
