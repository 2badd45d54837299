package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
)

// ContractCaller is the read half of ethclient.Client.
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// ThrottledCaller bounds the number of in-flight eth_call requests against
// one rpc endpoint. Public endpoints rate limit aggressively and a single
// LP price fans out into several nested reads.
type ThrottledCaller struct {
	caller ContractCaller
	tokens chan struct{}
}

func NewThrottledCaller(caller ContractCaller, n int) *ThrottledCaller {
	if n <= 0 {
		n = 1
	}
	return &ThrottledCaller{
		caller: caller,
		tokens: make(chan struct{}, n),
	}
}

func (c *ThrottledCaller) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case c.tokens <- struct{}{}:
	}
	defer func() { <-c.tokens }()
	return c.caller.CallContract(ctx, msg, number)
}

// InFlight reports how many calls currently hold a slot.
func (c *ThrottledCaller) InFlight() int {
	return len(c.tokens)
}
