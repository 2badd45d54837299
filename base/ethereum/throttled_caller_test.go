package ethereum

import (
	"context"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/stretchr/testify/require"
)

type slowCaller struct {
	running int32
	peak    int32
}

func (s *slowCaller) CallContract(ctx context.Context, msg ethereum.CallMsg, blk *big.Int) ([]byte, error) {
	n := atomic.AddInt32(&s.running, 1)
	for {
		peak := atomic.LoadInt32(&s.peak)
		if n <= peak || atomic.CompareAndSwapInt32(&s.peak, peak, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)
	atomic.AddInt32(&s.running, -1)
	return []byte{1}, nil
}

func TestThrottledCallerBoundsConcurrency(t *testing.T) {
	inner := &slowCaller{}
	c := NewThrottledCaller(inner, 2)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := c.CallContract(context.Background(), ethereum.CallMsg{}, nil)
			require.NoError(t, err)
			require.Equal(t, []byte{1}, res)
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, atomic.LoadInt32(&inner.peak), int32(2))
	require.Equal(t, 0, c.InFlight())
}

func TestThrottledCallerCancelled(t *testing.T) {
	c := NewThrottledCaller(&slowCaller{}, 1)
	c.tokens <- struct{}{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.CallContract(ctx, ethereum.CallMsg{}, nil)
	require.ErrorIs(t, err, context.Canceled)
}
