package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/base/log"
	"github.com/x-xyz/goprice/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive creates an in-process cache of sizeMB megabytes
func NewPrimitive(name string, sizeMB int) provider.Provider {
	return &impl{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, exp, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("freecache.Get failed")
		return nil, 0, err
	}

	// zero ttl means the entry never expires
	var ttl time.Duration
	if exp > 0 {
		if ttl = time.Until(time.Unix(int64(exp), 0)).Round(time.Second); ttl < time.Second {
			ttl = time.Second
		}
	}
	return val, ttl, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		// entries larger than 1/1024 of the cache are rejected
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
