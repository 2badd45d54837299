package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/base/metrics"
	"github.com/x-xyz/goprice/service/cache/provider"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service stores typed values under a key prefix
type Service interface {
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Metrics     metrics.Service
	Serialize   Serializer
	Deserialize Deserializer
}
