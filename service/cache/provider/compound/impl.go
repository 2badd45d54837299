package compound

import (
	"time"

	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/base/log"
	"github.com/x-xyz/goprice/service/cache/provider"
)

type impl struct {
	layers []provider.Provider
}

// NewCompound stacks layers from nearest to farthest. A hit back-fills the
// nearer layers. A failing layer is treated as a miss so a remote outage only
// costs latency.
func NewCompound(layers ...provider.Provider) provider.Provider {
	return &impl{layers}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	for idx, lyr := range im.layers {
		val, ttl, err := lyr.Get(c, key)
		if err == provider.ErrNotFound {
			continue
		} else if err != nil {
			c.WithFields(log.Fields{"err": err, "key": key, "layer": idx}).Warn("layer Get failed")
			continue
		}

		for _, near := range im.layers[:idx] {
			if err := near.Set(c, key, val, ttl); err != nil {
				c.WithFields(log.Fields{"err": err, "key": key}).Warn("back-fill failed")
			}
		}
		return val, ttl, nil
	}
	return nil, 0, provider.ErrNotFound
}

// Set writes every layer and reports the first failure.
func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	var first error
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value, ttl); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	var first error
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil && first == nil {
			first = err
		}
	}
	return first
}
