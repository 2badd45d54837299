package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/goprice/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// raw byte cache, a layer of the price cache
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
