package usecase

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/base/log"
	"github.com/x-xyz/goprice/domain"
	"github.com/x-xyz/goprice/service/oracle"
)

var two = decimal.NewFromInt(2)

type base struct {
	address  domain.Address
	decimals int32
}

type impl struct {
	network   *domain.NetworkConfig
	reserves  oracle.ReservesReader
	tokenRepo domain.TokenRepo
	pricer    domain.UsdPricer
}

// New prices tokens against the network's USD reference and wrapped native
// in the configured uniswap v2 style factories.
func New(reserves oracle.ReservesReader, cfg *domain.RouterCfg) domain.Router {
	return &impl{
		network:   cfg.Network,
		reserves:  reserves,
		tokenRepo: cfg.TokenRepo,
		pricer:    cfg.Pricer,
	}
}

func (im *impl) Source() domain.Source {
	return domain.SourceUniswapForksRouter
}

func (im *impl) bases() []base {
	return []base{
		{im.network.UsdReference, im.network.UsdReferenceDecimals},
		{im.network.WrappedNative, im.network.WrappedNativeDecimals},
	}
}

func (im *impl) PriceOf(c ctx.Ctx, token domain.Address, blk *big.Int) (domain.Price, error) {
	if len(im.network.UniswapFactories) == 0 {
		return domain.UnknownPrice(), xerrors.Errorf("no factories on %s: %w", im.network.Network, domain.ErrSourceGated)
	}

	// decimals are read once the first factory is live at blk
	var t *domain.Token
	for _, factory := range im.network.UniswapFactories {
		if !factory.ValidAt(blk) {
			continue
		}
		if t == nil {
			var err error
			if t, err = im.tokenRepo.FindOne(c, token); err != nil {
				c.WithFields(log.Fields{"err": err, "token": token}).Debug("tokenRepo.FindOne failed")
				return domain.UnknownPrice(), xerrors.Errorf("decimals of %s: %v: %w", token, err, domain.ErrSourceUnavailable)
			}
		}
		for _, b := range im.bases() {
			if b.address.IsEmpty() || b.address.Equals(token) {
				continue
			}
			if p, ok := im.priceIn(c, factory, t, b, blk); ok {
				return p, nil
			}
		}
	}
	return domain.UnknownPrice(), xerrors.Errorf("no liquid pair for %s: %w", token, domain.ErrSourceUnavailable)
}

// priceIn prices token from its pair with b in one factory.
func (im *impl) priceIn(c ctx.Ctx, factory domain.OracleContract, token *domain.Token, b base, blk *big.Int) (domain.Price, bool) {
	res, err := im.reserves.Reserves(c, factory, token.Address, b.address, blk)
	if err != nil {
		return domain.UnknownPrice(), false
	}
	if res.Token.Sign() == 0 || res.Base.Sign() == 0 {
		return domain.UnknownPrice(), false
	}

	basePrice, err := im.pricer.GetUsdPricePerToken(c, b.address, blk)
	if err != nil || basePrice.IsUnknown() {
		c.WithFields(log.Fields{"err": err, "base": b.address, "pair": res.Pair}).Debug("base price unknown")
		return domain.UnknownPrice(), false
	}

	baseAmount := decimal.NewFromBigInt(res.Base, -b.decimals)
	tokenAmount := decimal.NewFromBigInt(res.Token, -token.Decimals)
	usd := baseAmount.Mul(basePrice.UsdPrice()).DivRound(tokenAmount, domain.DefaultPrecision)
	liquidity := baseAmount.Mul(basePrice.UsdPrice()).Mul(two)

	return domain.NewPriceFromDecimal(usd, domain.DefaultPrecision, domain.SourceUniswapForksRouter).WithLiquidity(liquidity), true
}
