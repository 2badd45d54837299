package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedisKey(t *testing.T) {
	req := require.New(t)
	req.Equal("price:1:0xabc:100", RedisKey(PfxPrice, "1", "0xabc", "100"))
	req.Equal("a-b", CustomKey("-", "a", "b"))
}

func TestGetPrefix(t *testing.T) {
	req := require.New(t)
	req.Equal("price:1", GetPrefix("price:1:0xabc:100"))
	req.Equal("price", GetPrefix("price:1"))
	req.Equal("", GetPrefix("price"))
}
