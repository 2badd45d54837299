package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goprice/base/abi"
	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/base/log"
	"github.com/x-xyz/goprice/domain"
	"github.com/x-xyz/goprice/service/chain"
)

// maxCoins is the number of coin slots a curve pool can have.
const maxCoins = 8

// virtualPricePrecision is the precision of get_virtual_price.
const virtualPricePrecision = 18

type impl struct {
	chainClient chain.Client
	network     *domain.NetworkConfig
	tokenRepo   domain.TokenRepo
	pricer      domain.UsdPricer
}

func New(chainClient chain.Client, cfg *domain.RouterCfg) domain.CurveRouter {
	return &impl{
		chainClient: chainClient,
		network:     cfg.Network,
		tokenRepo:   cfg.TokenRepo,
		pricer:      cfg.Pricer,
	}
}

func (im *impl) Source() domain.Source {
	return domain.SourceCurveRouter
}

func (im *impl) IsLpToken(c ctx.Ctx, token domain.Address, blk *big.Int) bool {
	_, ok := im.poolOf(c, token, blk)
	return ok
}

// poolOf scans the registries in order for the pool minting lp.
func (im *impl) poolOf(c ctx.Ctx, lp domain.Address, blk *big.Int) (common.Address, bool) {
	for _, registry := range im.network.CurveRegistries {
		if !registry.ValidAt(blk) {
			continue
		}
		res, err := im.call(c, registry.Address, blk, "get_pool_from_lp_token", lp.ToCommon())
		if err != nil {
			continue
		}
		if pool := res[0].(common.Address); pool != (common.Address{}) {
			return pool, true
		}
	}
	return common.Address{}, false
}

func (im *impl) PriceOf(c ctx.Ctx, lp domain.Address, blk *big.Int) (domain.Price, error) {
	pool, ok := im.poolOf(c, lp, blk)
	if !ok {
		return domain.UnknownPrice(), xerrors.Errorf("no curve pool for %s: %w", lp, domain.ErrSourceUnavailable)
	}

	c = ctx.WithLogFields(c, log.Fields{"lp": lp, "pool": domain.FromCommon(pool), "blk": blk})
	var (
		usd decimal.Decimal
		err error
	)
	if im.isVolatile(c, pool, blk) {
		usd, err = im.volatilePrice(c, lp, pool, blk)
		if err != nil {
			return domain.UnknownPrice(), err
		}
		return domain.NewPriceFromDecimal(usd, domain.DefaultPrecision, domain.SourceCurveRouter), nil
	}
	return im.peggedPrice(c, pool, blk)
}

// isVolatile detects crypto pools by their internal price oracle, plain
// for two coins and indexed for tricrypto.
func (im *impl) isVolatile(c ctx.Ctx, pool common.Address, blk *big.Int) bool {
	if _, err := im.chainClient.Call(c, im.network.ChainId, pool, blk, abi.CurvePoolABI, "price_oracle"); err == nil {
		return true
	}
	_, err := im.chainClient.Call(c, im.network.ChainId, pool, blk, abi.CurveTricryptoPoolABI, "price_oracle", big.NewInt(0))
	return err == nil
}

// volatilePrice values every coin held by the pool and spreads it over the lp
// supply. Any coin that cannot be valued makes the whole price unknown.
func (im *impl) volatilePrice(c ctx.Ctx, lp domain.Address, pool common.Address, blk *big.Int) (decimal.Decimal, error) {
	value := decimal.Zero
	n := 0
	for i := 0; i < maxCoins; i++ {
		idx := big.NewInt(int64(i))
		res, err := im.chainClient.Call(c, im.network.ChainId, pool, blk, abi.CurvePoolABI, "coins", idx)
		if err != nil {
			break
		}
		coin := domain.FromCommon(res[0].(common.Address))
		if coin.IsEmpty() {
			break
		}

		res, err = im.chainClient.Call(c, im.network.ChainId, pool, blk, abi.CurvePoolABI, "balances", idx)
		if err != nil {
			return decimal.Zero, unavailable(c, "balances", err)
		}
		balance := res[0].(*big.Int)

		dec, err := im.decimalsOf(c, coin)
		if err != nil {
			return decimal.Zero, unavailable(c, "decimals", err)
		}

		price, err := im.pricer.GetUsdPricePerToken(c, coin, blk)
		if err != nil || price.IsUnknown() {
			c.WithFields(log.Fields{"coin": coin, "err": err}).Debug("coin price unknown")
			return decimal.Zero, xerrors.Errorf("coin %s unpriced: %w", coin, domain.ErrSourceUnavailable)
		}

		value = value.Add(decimal.NewFromBigInt(balance, -dec).Mul(price.UsdPrice()))
		n++
	}
	if n == 0 {
		return decimal.Zero, xerrors.Errorf("pool without coins: %w", domain.ErrSourceUnavailable)
	}

	res, err := im.chainClient.Call(c, im.network.ChainId, lp.ToCommon(), blk, abi.ERC20ABI, "totalSupply")
	if err != nil {
		return decimal.Zero, unavailable(c, "totalSupply", err)
	}
	supply := res[0].(*big.Int)
	if supply.Sign() == 0 {
		return decimal.Zero, xerrors.Errorf("zero lp supply: %w", domain.ErrSourceUnavailable)
	}
	lpDec, err := im.decimalsOf(c, lp)
	if err != nil {
		return decimal.Zero, unavailable(c, "decimals", err)
	}

	return value.DivRound(decimal.NewFromBigInt(supply, -lpDec), domain.DefaultPrecision), nil
}

// peggedPrice is virtual price times the preferred underlying coin's price.
func (im *impl) peggedPrice(c ctx.Ctx, pool common.Address, blk *big.Int) (domain.Price, error) {
	res, err := im.chainClient.Call(c, im.network.ChainId, pool, blk, abi.CurvePoolABI, "get_virtual_price")
	if err != nil {
		return domain.UnknownPrice(), unavailable(c, "get_virtual_price", err)
	}
	virtualPrice := res[0].(*big.Int)

	coin, ok := im.preferredCoin(c, pool, blk)
	if !ok {
		return domain.UnknownPrice(), xerrors.Errorf("no underlying coins: %w", domain.ErrSourceUnavailable)
	}
	dec, err := im.decimalsOf(c, coin)
	if err != nil {
		return domain.UnknownPrice(), unavailable(c, "decimals", err)
	} else if dec > domain.MaxPrecision {
		return domain.UnknownPrice(), xerrors.Errorf("coin %s has %d decimals: %w", coin, dec, domain.ErrSourceUnavailable)
	}
	price, err := im.pricer.GetUsdPricePerToken(c, coin, blk)
	if err != nil || price.IsUnknown() {
		c.WithFields(log.Fields{"coin": coin, "err": err}).Debug("preferred coin price unknown")
		return domain.UnknownPrice(), xerrors.Errorf("coin %s unpriced: %w", coin, domain.ErrSourceUnavailable)
	}

	magnitude := decimal.NewFromBigInt(virtualPrice, 0).
		Mul(price.UsdPrice()).
		Shift(virtualPricePrecision - dec).
		BigInt()
	return domain.NewPrice(magnitude, domain.MaxPrecision-dec, domain.SourceCurveRouter), nil
}

// preferredCoin reads the underlying coins from the first registry that
// knows the pool and picks the last coin before the first empty slot.
func (im *impl) preferredCoin(c ctx.Ctx, pool common.Address, blk *big.Int) (domain.Address, bool) {
	for _, registry := range im.network.CurveRegistries {
		if !registry.ValidAt(blk) {
			continue
		}
		res, err := im.call(c, registry.Address, blk, "get_underlying_coins", pool)
		if err != nil {
			continue
		}
		if coin, ok := lastBeforeFirstNull(res[0].([maxCoins]common.Address)); ok {
			return coin, true
		}
	}
	return domain.EmptyAddress, false
}

// lastBeforeFirstNull returns the last coin before the first empty slot. A
// list starting with an empty slot has no preferred coin.
func lastBeforeFirstNull(coins [maxCoins]common.Address) (domain.Address, bool) {
	var (
		preferred domain.Address
		seen      bool
	)
	for _, coin := range coins {
		if coin == (common.Address{}) {
			break
		}
		preferred, seen = domain.FromCommon(coin), true
	}
	return preferred, seen
}

func (im *impl) decimalsOf(c ctx.Ctx, token domain.Address) (int32, error) {
	if im.network.IsNative(token) {
		return im.network.WrappedNativeDecimals, nil
	}
	t, err := im.tokenRepo.FindOne(c, token)
	if err != nil {
		return 0, err
	}
	return t.Decimals, nil
}

func (im *impl) call(c ctx.Ctx, registry domain.Address, blk *big.Int, method string, params ...interface{}) ([]interface{}, error) {
	return im.chainClient.Call(c, im.network.ChainId, registry.ToCommon(), blk, abi.CurveRegistryABI, method, params...)
}

func unavailable(c ctx.Ctx, method string, err error) error {
	c.WithFields(log.Fields{"err": err, "method": method}).Debug("curve read failed")
	return xerrors.Errorf("curve %s: %v: %w", method, err, domain.ErrSourceUnavailable)
}
