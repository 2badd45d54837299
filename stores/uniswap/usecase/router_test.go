package usecase

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/domain"
	"github.com/x-xyz/goprice/domain/mocks"
	"github.com/x-xyz/goprice/service/chain/chaintest"
	"github.com/x-xyz/goprice/service/oracle"
)

var (
	mockCtx = ctx.Background()

	sushiFactory = domain.Address("0xc0aee478e3658e2610c5f7a4a2e1777ce9e4f2ac")
	uniFactory   = domain.Address("0x5c69bee701ef814a2b6a3edd4b1652cb9cc5aa6f")
	usdcPair     = domain.Address("0x397ff1542f962076d0bfe58ea045ffa2d347aca0")
	wethPair     = domain.Address("0x795065dcc9f64b5614c407a6efdc400da6221fb0")

	usdc  = domain.Address("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	weth  = domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")
	sushi = domain.Address("0x6b3595068778dd592e39a122f4f5a5cf09c90fe2")
)

func units(n, decimals int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), domain.Pow10(decimals))
}

type testsuite struct {
	suite.Suite
	chain   *chaintest.FakeClient
	tokens  *mocks.TokenRepo
	pricer  *mocks.UsdPricer
	network *domain.NetworkConfig
	im      domain.Router
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) SetupTest() {
	ts.chain = chaintest.NewFakeClient()
	ts.tokens = &mocks.TokenRepo{}
	ts.pricer = &mocks.UsdPricer{}
	ts.network = &domain.NetworkConfig{
		ChainId: 1,
		Network: "mainnet",
		UniswapFactories: []domain.OracleContract{
			{Address: sushiFactory, FirstValidBlock: 10794229},
			{Address: uniFactory, FirstValidBlock: 10000835},
		},
		WrappedNative:         weth,
		WrappedNativeDecimals: 18,
		UsdReference:          usdc,
		UsdReferenceDecimals:  6,
	}
	ts.im = New(oracle.NewReservesReader(ts.chain, 1), &domain.RouterCfg{
		Network:   ts.network,
		TokenRepo: ts.tokens,
		Pricer:    ts.pricer,
	})

	for addr, dec := range map[domain.Address]int32{usdc: 6, weth: 18, sushi: 18} {
		ts.tokens.On("FindOne", mock.Anything, addr).Return(&domain.Token{Address: addr, Decimals: dec}, nil).Maybe()
	}
	ts.pricer.On("GetUsdPricePerToken", mock.Anything, usdc, mock.Anything).Return(domain.OneDollar(), nil).Maybe()
}

// pairs registers the pairs a factory knows, keyed by the non-priced side.
func (ts *testsuite) pairs(factory domain.Address, pairs map[domain.Address]domain.Address) {
	ts.chain.Handle(factory, "getPair", func(blk *big.Int, params ...interface{}) ([]interface{}, error) {
		b := domain.FromCommon(params[1].(common.Address))
		if p, ok := pairs[b]; ok {
			return []interface{}{p.ToCommon()}, nil
		}
		return []interface{}{common.Address{}}, nil
	})
}

func (ts *testsuite) TestPriceAgainstUsdReference() {
	ts.pairs(sushiFactory, map[domain.Address]domain.Address{usdc: usdcPair})
	ts.chain.
		Returns(usdcPair, "token0", usdc.ToCommon()).
		Returns(usdcPair, "getReserves", units(2000000, 6), units(1000, 18), uint32(0))

	p, err := ts.im.PriceOf(mockCtx, weth, big.NewInt(15000000))
	ts.NoError(err)
	ts.Equal("2000", p.UsdPrice().String())
	ts.Equal(domain.SourceUniswapForksRouter, p.Provenance)
	ts.Equal("4000000", p.Liquidity.String())
	ts.Equal(domain.SourceUniswapForksRouter, ts.im.Source())
}

func (ts *testsuite) TestFallsBackToWrappedNative() {
	ts.pairs(sushiFactory, map[domain.Address]domain.Address{weth: wethPair})
	ts.chain.
		Returns(wethPair, "token0", sushi.ToCommon()).
		Returns(wethPair, "getReserves", units(40000, 18), units(20, 18), uint32(0))
	ts.pricer.On("GetUsdPricePerToken", mock.Anything, weth, mock.Anything).
		Return(domain.NewPriceFromDecimal(decimal.NewFromInt(2000), 8, domain.SourceChainlink), nil)

	p, err := ts.im.PriceOf(mockCtx, sushi, nil)
	ts.NoError(err)
	// 20 weth / 40000 sushi * 2000
	ts.Equal("1", p.UsdPrice().String())
	ts.Equal("80000", p.Liquidity.String())
}

func (ts *testsuite) TestSkipsEmptyReserves() {
	ts.pairs(sushiFactory, map[domain.Address]domain.Address{usdc: usdcPair})
	ts.chain.
		Returns(usdcPair, "token0", usdc.ToCommon()).
		Returns(usdcPair, "getReserves", big.NewInt(0), units(1000, 18), uint32(0))
	ts.pairs(uniFactory, map[domain.Address]domain.Address{usdc: wethPair})
	ts.chain.
		Returns(wethPair, "token0", usdc.ToCommon()).
		Returns(wethPair, "getReserves", units(1800000, 6), units(1000, 18), uint32(0))

	p, err := ts.im.PriceOf(mockCtx, weth, nil)
	ts.NoError(err)
	ts.Equal("1800", p.UsdPrice().String())
}

func (ts *testsuite) TestFactoryGating() {
	ts.pairs(sushiFactory, map[domain.Address]domain.Address{usdc: usdcPair})

	p, err := ts.im.PriceOf(mockCtx, weth, big.NewInt(10000834))
	ts.True(xerrors.Is(err, domain.ErrSourceUnavailable))
	ts.True(p.IsUnknown())
	ts.Equal(0, ts.chain.TotalCalls())
	ts.tokens.AssertNotCalled(ts.T(), "FindOne", mock.Anything, weth)
}

func (ts *testsuite) TestNoPair() {
	ts.pairs(sushiFactory, nil)
	ts.pairs(uniFactory, nil)

	p, err := ts.im.PriceOf(mockCtx, sushi, nil)
	ts.True(xerrors.Is(err, domain.ErrSourceUnavailable))
	ts.True(p.IsUnknown())
	// usdc and weth base in both factories
	ts.Equal(4, ts.chain.TotalCalls())
}

func (ts *testsuite) TestUnpricedBase() {
	ts.pairs(sushiFactory, map[domain.Address]domain.Address{weth: wethPair})
	ts.pairs(uniFactory, nil)
	ts.chain.
		Returns(wethPair, "token0", sushi.ToCommon()).
		Returns(wethPair, "getReserves", units(40000, 18), units(20, 18), uint32(0))
	ts.pricer.On("GetUsdPricePerToken", mock.Anything, weth, mock.Anything).
		Return(domain.UnknownPrice(), domain.ErrRecursionLimit)

	p, err := ts.im.PriceOf(mockCtx, sushi, nil)
	ts.True(xerrors.Is(err, domain.ErrSourceUnavailable))
	ts.True(p.IsUnknown())
}

func (ts *testsuite) TestNoFactories() {
	ts.network.UniswapFactories = nil
	p, err := ts.im.PriceOf(mockCtx, sushi, nil)
	ts.True(xerrors.Is(err, domain.ErrSourceGated))
	ts.True(p.IsUnknown())
}
