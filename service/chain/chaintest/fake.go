// Package chaintest serves contract reads from in-memory handlers so price
// resolution can be exercised without a node.
package chaintest

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	bCtx "github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/domain"
	"github.com/x-xyz/goprice/service/chain"
)

// ErrReverted is returned for any read without a handler.
var ErrReverted = errors.New("execution reverted")

// Handler answers one read. Returned values must match the method outputs.
type Handler func(blk *big.Int, params ...interface{}) ([]interface{}, error)

// FakeClient implements chain.Client. Handlers are keyed by contract and
// either the method name or its full signature, e.g. "price_oracle(uint256)".
type FakeClient struct {
	mu       sync.Mutex
	handlers map[string]Handler
	calls    map[string]int
	total    int
}

var _ chain.Client = (*FakeClient)(nil)

func NewFakeClient() *FakeClient {
	return &FakeClient{
		handlers: make(map[string]Handler),
		calls:    make(map[string]int),
	}
}

func key(addr domain.Address, method string) string {
	return addr.ToLowerStr() + ":" + method
}

func (f *FakeClient) Handle(addr domain.Address, method string, h Handler) *FakeClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[key(addr, method)] = h
	return f
}

// Returns answers every read of method with the same values.
func (f *FakeClient) Returns(addr domain.Address, method string, out ...interface{}) *FakeClient {
	return f.Handle(addr, method, func(*big.Int, ...interface{}) ([]interface{}, error) {
		return out, nil
	})
}

// Reverts makes method fail explicitly, which is also the default.
func (f *FakeClient) Reverts(addr domain.Address, method string) *FakeClient {
	return f.Handle(addr, method, func(*big.Int, ...interface{}) ([]interface{}, error) {
		return nil, ErrReverted
	})
}

// Calls counts reads of method on addr, by name.
func (f *FakeClient) Calls(addr domain.Address, method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key(addr, method)]
}

// CallsTo counts every read against addr.
func (f *FakeClient) CallsTo(addr domain.Address) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	pfx := addr.ToLowerStr() + ":"
	for k, v := range f.calls {
		if strings.HasPrefix(k, pfx) {
			n += v
		}
	}
	return n
}

func (f *FakeClient) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}

func (f *FakeClient) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	m, ok := _abi.Methods[method]
	if !ok {
		return nil, fmt.Errorf("method %s not in abi", method)
	}
	// same argument validation a real call goes through
	if _, err := _abi.Pack(method, params...); err != nil {
		return nil, err
	}

	a := domain.FromCommon(addr)
	f.mu.Lock()
	f.calls[key(a, method)]++
	f.total++
	h, ok := f.handlers[key(a, m.Sig)]
	if !ok {
		h, ok = f.handlers[key(a, method)]
	}
	f.mu.Unlock()
	if !ok {
		return nil, ErrReverted
	}

	out, err := h(blk, params...)
	if err != nil {
		return nil, err
	}
	// round trip through the ABI so handlers produce what a node would
	packed, err := m.Outputs.Pack(out...)
	if err != nil {
		return nil, fmt.Errorf("handler for %s returned bad outputs: %w", m.Sig, err)
	}
	return m.Outputs.Unpack(packed)
}
