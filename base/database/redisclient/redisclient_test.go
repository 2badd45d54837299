package redisclient

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	req := require.New(t)
	p := NewPool("127.0.0.1:6379", "")
	req.Equal(200, p.MaxIdle)
	req.Equal(1024, p.MaxActive)
	req.True(p.Wait)

	p = NewPool("127.0.0.1:6379", "secret", RedisParam{PoolMultiplier: 8})
	req.Greater(p.MaxActive, 0)
	req.Equal(p.MaxActive/4, p.MaxIdle)
}

func TestConnectRedisWithoutRetry(t *testing.T) {
	// nothing listens on port 1
	_, err := ConnectRedis("127.0.0.1:1", "")
	require.Error(t, err)
}
