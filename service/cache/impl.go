package cache

import (
	"encoding/json"

	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/base/log"
	"github.com/x-xyz/goprice/base/metrics"
	"github.com/x-xyz/goprice/domain/keys"
	"github.com/x-xyz/goprice/service/cache/provider"
)

type impl struct {
	ServiceConfig
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}
	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}
	if config.Metrics == nil {
		config.Metrics = metrics.Nop{}
	}
	return &impl{config}
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = keys.RedisKey(im.Pfx, key)

	val, _, err := im.Cache.Get(c, key)
	if err == provider.ErrNotFound {
		im.Metrics.BumpSum("cache.miss", 1, "prefix", im.Pfx)
		return ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Get failed")
		return err
	}

	if err := im.Deserialize(val, container); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("deserialize failed")
		return err
	}
	im.Metrics.BumpSum("cache.hit", 1, "prefix", im.Pfx)
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = keys.RedisKey(im.Pfx, key)

	val, err := im.Serialize(value)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("serialize failed")
		return err
	}
	if err := im.Cache.Set(c, key, val, im.Ttl); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = keys.RedisKey(im.Pfx, key)

	if err := im.Cache.Del(c, key); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Del failed")
		return err
	}
	return nil
}
