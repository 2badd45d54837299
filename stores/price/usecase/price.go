package usecase

import (
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/base/log"
	"github.com/x-xyz/goprice/base/metrics"
	"github.com/x-xyz/goprice/domain"
	"github.com/x-xyz/goprice/domain/keys"
	"github.com/x-xyz/goprice/service/cache"
	"github.com/x-xyz/goprice/service/chain"
	"github.com/x-xyz/goprice/service/oracle"
	curve "github.com/x-xyz/goprice/stores/curve/usecase"
	uniswap "github.com/x-xyz/goprice/stores/uniswap/usecase"
)

type PriceUsecaseCfg struct {
	ChainClient chain.Client
	Network     *domain.NetworkConfig
	TokenRepo   domain.TokenRepo
	// Cache is optional. Only known prices at explicit blocks are stored.
	Cache    cache.Service
	Metrics  metrics.Service
	MaxDepth int
	// BatchWorkers bounds GetUsdPricesPerToken, DefaultBatchWorkers when unset.
	BatchWorkers int
}

type impl struct {
	network      *domain.NetworkConfig
	tokenRepo    domain.TokenRepo
	cache        cache.Service
	met          metrics.Service
	maxDepth     int
	batchWorkers int
	waterfall    []domain.OracleSource
}

// New builds the resolver of one network. The routers it owns recurse back
// into it for the tokens a composite token holds.
func New(cfg *PriceUsecaseCfg) domain.PriceUsecase {
	im := &impl{
		network:      cfg.Network,
		tokenRepo:    cfg.TokenRepo,
		cache:        cfg.Cache,
		met:          cfg.Metrics,
		maxDepth:     cfg.MaxDepth,
		batchWorkers: cfg.BatchWorkers,
	}
	if im.met == nil {
		im.met = metrics.Nop{}
	}
	if im.maxDepth <= 0 {
		im.maxDepth = DefaultMaxDepth
	}
	if im.batchWorkers <= 0 {
		im.batchWorkers = DefaultBatchWorkers
	}

	routerCfg := &domain.RouterCfg{
		Network:   cfg.Network,
		TokenRepo: cfg.TokenRepo,
		Pricer:    im,
	}
	reserves := oracle.NewReservesReader(cfg.ChainClient, cfg.Network.ChainId)

	im.waterfall = append(im.waterfall, oracle.NewSources(cfg.ChainClient, cfg.Network)...)
	im.waterfall = append(im.waterfall,
		&routerSource{curve.New(cfg.ChainClient, routerCfg), cfg.Network},
		&routerSource{uniswap.New(reserves, routerCfg), cfg.Network},
	)
	im.waterfall = append(im.waterfall, oracle.NewCalculations(cfg.ChainClient, cfg.Network)...)
	return im
}

func (im *impl) GetUsdPricePerToken(c ctx.Ctx, token domain.Address, blk *big.Int) (domain.Price, error) {
	token = token.ToLower()
	if im.network.IsHardcodedStable(token) {
		return domain.OneDollar(), nil
	}
	if im.network.IsNative(token) {
		token = im.network.WrappedNative.ToLower()
	}

	trail := trailOf(c)
	if onTrail(trail, token) || len(trail) >= im.maxDepth {
		c.WithFields(log.Fields{"token": token, "trail": trail}).Debug("resolution cut")
		im.met.BumpSum("recursion.cut", 1, "chain", im.network.Network)
		return domain.UnknownPrice(), xerrors.Errorf("%s at depth %d: %w", token, len(trail), domain.ErrRecursionLimit)
	}

	key := im.cacheKey(token, blk)
	if key != "" {
		p := domain.Price{}
		if err := im.cache.Get(c, key, &p); err == nil {
			return p, nil
		}
	}

	if len(trail) == 0 {
		defer im.met.BumpTime("resolve.time", "chain", im.network.Network).End()
	}

	p, err := im.resolve(withTrail(c, token), token, blk)
	if err != nil {
		return p, err
	}

	// nested results may be shaped by the trail, only top level ones are kept
	if key != "" && len(trail) == 0 {
		if err := im.cache.Set(c, key, p); err != nil {
			c.WithFields(log.Fields{"err": err, "key": key}).Warn("cache.Set failed")
		}
	}
	return p, nil
}

// resolve walks the waterfall and returns the first positive price.
func (im *impl) resolve(c ctx.Ctx, token domain.Address, blk *big.Int) (domain.Price, error) {
	for _, src := range im.order(token) {
		p, err := src.TryPrice(c, token, blk)
		if err == nil && p.Magnitude != nil && p.Magnitude.Sign() > 0 {
			im.met.BumpSum("source.hit", 1, "source", string(src.Source()), "chain", im.network.Network)
			return p, nil
		}
		if xerrors.Is(err, domain.ErrSourceGated) {
			continue
		}
		im.met.BumpSum("source.miss", 1, "source", string(src.Source()), "chain", im.network.Network)
		c.WithFields(log.Fields{
			"err":    err,
			"token":  token,
			"blk":    blk,
			"source": src.Source(),
		}).Debug("source missed")
	}

	c.WithFields(log.Fields{"token": token, "blk": blk, "network": im.network.Network}).Info("no price found")
	return domain.UnknownPrice(), xerrors.Errorf("%s on %s: %w", token, im.network.Network, domain.ErrNoPriceFound)
}

// order moves the token's override, if any, to the front of the waterfall.
func (im *impl) order(token domain.Address) []domain.OracleSource {
	override, ok := im.network.OverrideFor(token)
	if !ok {
		return im.waterfall
	}
	ordered := make([]domain.OracleSource, 0, len(im.waterfall))
	for _, src := range im.waterfall {
		if src.Source() == override {
			ordered = append(ordered, src)
		}
	}
	for _, src := range im.waterfall {
		if src.Source() != override {
			ordered = append(ordered, src)
		}
	}
	return ordered
}

func (im *impl) cacheKey(token domain.Address, blk *big.Int) string {
	if im.cache == nil || blk == nil {
		return ""
	}
	return keys.RedisKey(strconv.Itoa(int(im.network.ChainId)), string(token), blk.String())
}

func (im *impl) GetUsdPrice(c ctx.Ctx, token domain.Address, amount decimal.Decimal, blk *big.Int) (decimal.Decimal, error) {
	usd, _, err := im.value(c, token, amount, blk)
	return usd, err
}

func (im *impl) GetLiquidityBoundUsdPrice(c ctx.Ctx, token domain.Address, amount decimal.Decimal, blk *big.Int) (decimal.Decimal, error) {
	usd, p, err := im.value(c, token, amount, blk)
	if err != nil {
		return usd, err
	}
	if p.Liquidity.IsPositive() && usd.GreaterThan(p.Liquidity) {
		return p.Liquidity, nil
	}
	return usd, nil
}

// value converts a raw amount of token into USD.
func (im *impl) value(c ctx.Ctx, token domain.Address, amount decimal.Decimal, blk *big.Int) (decimal.Decimal, domain.Price, error) {
	p, err := im.GetUsdPricePerToken(c, token, blk)
	if err != nil {
		return decimal.Zero, p, err
	}

	dec, err := im.decimalsOf(c, token)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "token": token}).Error("decimalsOf failed")
		return decimal.Zero, p, err
	}
	return amount.Shift(-dec).Mul(p.UsdPrice()), p, nil
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

// routerSource puts a router in the waterfall behind its denylist.
type routerSource struct {
	domain.Router
	network *domain.NetworkConfig
}

func (r *routerSource) TryPrice(c ctx.Ctx, token domain.Address, blk *big.Int) (domain.Price, error) {
	if r.network.IsDenied(r.Source(), token) {
		return domain.UnknownPrice(), xerrors.Errorf("%s denies %s: %w", r.Source(), token, domain.ErrSourceGated)
	}
	return r.PriceOf(c, token, blk)
}
