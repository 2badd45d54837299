package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	baseabi "github.com/x-xyz/goprice/base/abi"
	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/domain"
)

var (
	mockCTX = ctx.Background()
)

type recordingCaller struct {
	out   []byte
	err   error
	calls int
	last  ethereum.CallMsg
	blk   *big.Int
}

func (r *recordingCaller) CallContract(_ context.Context, msg ethereum.CallMsg, blk *big.Int) ([]byte, error) {
	r.calls++
	r.last = msg
	r.blk = blk
	return r.out, r.err
}

type testsuite struct {
	suite.Suite
	head    *recordingCaller
	archive *recordingCaller
	client  Client
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	out, err := baseabi.ERC20ABI.Methods["decimals"].Outputs.Pack(uint8(6))
	t.Require().NoError(err)
	t.head = &recordingCaller{out: out}
	t.archive = &recordingCaller{out: out}
	t.client = NewClientWithCallers(
		map[domain.ChainId]ContractCaller{1: t.head},
		map[domain.ChainId]ContractCaller{1: t.archive},
	)
}

func (t *testsuite) TestCallLatestUsesHeadClient() {
	token := common.HexToAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	res, err := t.client.Call(mockCTX, 1, token, nil, baseabi.ERC20ABI, "decimals")
	t.NoError(err)
	t.Equal(uint8(6), res[0].(uint8))
	t.Equal(1, t.head.calls)
	t.Equal(0, t.archive.calls)
	t.Equal(token, *t.head.last.To)
	t.Equal(baseabi.ERC20ABI.Methods["decimals"].ID, t.head.last.Data[:4])
}

func (t *testsuite) TestCallAtBlockUsesArchiveClient() {
	blk := big.NewInt(15000000)
	_, err := t.client.Call(mockCTX, 1, common.Address{}, blk, baseabi.ERC20ABI, "decimals")
	t.NoError(err)
	t.Equal(0, t.head.calls)
	t.Equal(1, t.archive.calls)
	t.Equal(blk, t.archive.blk)
}

func (t *testsuite) TestCallFallsBackToHeadWithoutArchive() {
	client := NewClientWithCallers(map[domain.ChainId]ContractCaller{1: t.head}, nil)
	_, err := client.Call(mockCTX, 1, common.Address{}, big.NewInt(1), baseabi.ERC20ABI, "decimals")
	t.NoError(err)
	t.Equal(1, t.head.calls)
}

func (t *testsuite) TestUnsupportedChain() {
	_, err := t.client.Call(mockCTX, 250, common.Address{}, nil, baseabi.ERC20ABI, "decimals")
	t.Equal(ErrUnsupportedChain, err)
}

func (t *testsuite) TestRevert() {
	revert := errors.New("execution reverted")
	t.head.err = revert
	_, err := t.client.Call(mockCTX, 1, common.Address{}, nil, baseabi.ERC20ABI, "decimals")
	t.Equal(revert, err)
}

func (t *testsuite) TestPackError() {
	_, err := t.client.Call(mockCTX, 1, common.Address{}, nil, baseabi.ERC20ABI, "balanceOf", "not an address")
	t.Error(err)
	t.Equal(0, t.head.calls)
}
