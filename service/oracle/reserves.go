package oracle

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goprice/base/abi"
	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/domain"
	"github.com/x-xyz/goprice/service/chain"
)

// ErrNoPair is wrapped when a factory has no pair for the two tokens.
var ErrNoPair = errors.New("pair not found")

// PairReserves are the reserves of a constant product pair, oriented to the
// token being priced.
type PairReserves struct {
	Pair  domain.Address
	Token *big.Int
	Base  *big.Int
}

type ReservesReader interface {
	Reserves(c ctx.Ctx, factory domain.OracleContract, token, base domain.Address, blk *big.Int) (*PairReserves, error)
}

type reservesImpl struct {
	chainClient chain.Client
	chainId     domain.ChainId
}

// NewReservesReader reads uniswap v2 style factories and pairs.
func NewReservesReader(chainClient chain.Client, chainId domain.ChainId) ReservesReader {
	return &reservesImpl{
		chainClient: chainClient,
		chainId:     chainId,
	}
}

func (im *reservesImpl) Reserves(c ctx.Ctx, factory domain.OracleContract, token, base domain.Address, blk *big.Int) (*PairReserves, error) {
	src := domain.SourceUniswapForksRouter
	if !factory.ValidAt(blk) {
		return nil, xerrors.Errorf("factory %s not deployed at block %s: %w", factory.Address, blk, domain.ErrSourceGated)
	}

	res, err := im.chainClient.Call(c, im.chainId, factory.Address.ToCommon(), blk, abi.UniswapV2FactoryABI, "getPair", token.ToCommon(), base.ToCommon())
	if err != nil {
		return nil, unavailable(c, src, "getPair", token, blk, err)
	}
	pairAddr := res[0].(common.Address)
	if pairAddr == (common.Address{}) {
		return nil, unavailable(c, src, "getPair", token, blk, ErrNoPair)
	}
	pair := domain.FromCommon(pairAddr)

	res, err = im.chainClient.Call(c, im.chainId, pairAddr, blk, abi.UniswapV2PairABI, "token0")
	if err != nil {
		return nil, unavailable(c, src, "token0", token, blk, err)
	}
	token0 := domain.FromCommon(res[0].(common.Address))

	res, err = im.chainClient.Call(c, im.chainId, pairAddr, blk, abi.UniswapV2PairABI, "getReserves")
	if err != nil {
		return nil, unavailable(c, src, "getReserves", token, blk, err)
	}
	r0, r1 := res[0].(*big.Int), res[1].(*big.Int)

	if token0.Equals(token) {
		return &PairReserves{Pair: pair, Token: r0, Base: r1}, nil
	}
	return &PairReserves{Pair: pair, Token: r1, Base: r0}, nil
}
