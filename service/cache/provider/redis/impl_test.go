package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/service/cache/provider"
	"github.com/x-xyz/goprice/service/redis"
)

var (
	mockCtx = ctx.Background()
)

type mockRedis struct {
	mock.Mock
}

func (m *mockRedis) Get(c ctx.Ctx, key string) ([]byte, error) {
	ret := m.Called(c, key)
	v, _ := ret.Get(0).([]byte)
	return v, ret.Error(1)
}

func (m *mockRedis) Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
	return m.Called(c, key, val, expire).Error(0)
}

func (m *mockRedis) Del(c ctx.Ctx, ks ...string) (int, error) {
	ret := m.Called(c, ks)
	return ret.Int(0), ret.Error(1)
}

func (m *mockRedis) Exists(c ctx.Ctx, key string) (bool, error) {
	ret := m.Called(c, key)
	return ret.Bool(0), ret.Error(1)
}

func (m *mockRedis) TTL(c ctx.Ctx, key string) (int, error) {
	ret := m.Called(c, key)
	return ret.Int(0), ret.Error(1)
}

func (m *mockRedis) Incrby(c ctx.Ctx, key string, val int) (int64, error) {
	ret := m.Called(c, key, val)
	return ret.Get(0).(int64), ret.Error(1)
}

type testsuite struct {
	suite.Suite
	im    *impl
	redis *mockRedis
}

func (ts *testsuite) SetupTest() {
	ts.redis = &mockRedis{}
	ts.im = NewRedis(ts.redis).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.redis.AssertExpectations(ts.T())
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "price:1:0xa:100"
	v := []byte("value")

	ts.redis.On("Set", mockCtx, k, v, time.Second).Return(nil).Once()
	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))

	ts.redis.On("Set", mockCtx, k, v, redis.Forever).Return(nil).Once()
	ts.NoError(ts.im.Set(mockCtx, k, v, 0))
}

func (ts *testsuite) TestGet() {
	var (
		k   = "price:1:0xa:100"
		v   = []byte("value")
		res []byte
		ttl time.Duration
		err error
	)

	ts.redis.On("Get", mockCtx, k).Return(nil, redis.ErrNotFound).Once()
	res, _, err = ts.im.Get(mockCtx, k)
	ts.Nil(res)
	ts.Equal(provider.ErrNotFound, err)

	ts.redis.On("Get", mockCtx, k).Return(v, nil).Once()
	ts.redis.On("TTL", mockCtx, k).Return(1, nil).Once()
	res, ttl, err = ts.im.Get(mockCtx, k)
	ts.Equal(v, res)
	ts.Equal(time.Second, ttl)
	ts.NoError(err)

	ts.redis.On("Get", mockCtx, k).Return(v, nil).Once()
	ts.redis.On("TTL", mockCtx, k).Return(-1, redis.ErrNoTTL).Once()
	res, ttl, err = ts.im.Get(mockCtx, k)
	ts.Equal(v, res)
	ts.Equal(time.Duration(0), ttl)
	ts.NoError(err)
}

func (ts *testsuite) TestDel() {
	k := "price:1:0xa:100"
	ts.redis.On("Del", mockCtx, []string{k}).Return(1, nil).Once()
	ts.NoError(ts.im.Del(mockCtx, k))
}
