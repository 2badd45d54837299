package cache

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/domain"
	"github.com/x-xyz/goprice/domain/keys"
	"github.com/x-xyz/goprice/service/cache/provider"
	"github.com/x-xyz/goprice/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   keys.PfxPrice,
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "1:0xa:100"
		v = domain.NewPrice(big.NewInt(100020000), 8, domain.SourceChainlink)
		c = domain.Price{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, &c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey(keys.PfxPrice, k), sv, time.Second))
	ts.NoError(ts.im.Get(mockCtx, k, &c))
	ts.Equal(0, v.Magnitude.Cmp(c.Magnitude))
	ts.Equal(v.Precision, c.Precision)
	ts.Equal(domain.SourceChainlink, c.Provenance)

	time.Sleep(1100 * time.Millisecond)
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, &c))
}

func (ts *testsuite) TestSet() {
	var (
		k = "1:0xa:100"
		c = domain.Price{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, domain.OneDollar()))

	sv, _, err := ts.cache.Get(mockCtx, "price:1:0xa:100")
	ts.NoError(err)
	ts.NoError(json.Unmarshal(sv, &c))
	ts.True(c.UsdPrice().Equal(domain.OneDollar().UsdPrice()))
}

func (ts *testsuite) TestDel() {
	k := "1:0xa:100"
	ts.NoError(ts.im.Set(mockCtx, k, domain.OneDollar()))
	ts.NoError(ts.im.Del(mockCtx, k))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, &domain.Price{}))
}
