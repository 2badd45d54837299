package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/goprice/base/ctx"
)

// UsdPricer resolves one token. Routers take this to recurse into the
// resolver for the tokens a composite token holds.
type UsdPricer interface {
	// GetUsdPricePerToken returns the unknown price together with
	// ErrNoPriceFound when nothing can price token. blk nil means latest.
	GetUsdPricePerToken(c ctx.Ctx, token Address, blk *big.Int) (Price, error)
}

type PriceUsecase interface {
	UsdPricer
	// GetUsdPrice values a raw token amount (not yet scaled by decimals).
	GetUsdPrice(c ctx.Ctx, token Address, amount decimal.Decimal, blk *big.Int) (decimal.Decimal, error)
	// GetLiquidityBoundUsdPrice is GetUsdPrice capped at the liquidity that
	// backs the price, when the source reports it.
	GetLiquidityBoundUsdPrice(c ctx.Ctx, token Address, amount decimal.Decimal, blk *big.Int) (decimal.Decimal, error)
	// GetUsdPricesPerToken resolves tokens concurrently at one block. Tokens
	// without a price map to the unknown price.
	GetUsdPricesPerToken(c ctx.Ctx, tokens []Address, blk *big.Int) (map[Address]Price, error)
}

// OracleSource is a single on-chain price source.
type OracleSource interface {
	Source() Source
	// TryPrice returns ErrSourceGated when the source was skipped without a
	// chain read and ErrSourceUnavailable when the read failed.
	TryPrice(c ctx.Ctx, token Address, blk *big.Int) (Price, error)
}

// Router prices composite tokens, recursing through a UsdPricer.
type Router interface {
	Source() Source
	PriceOf(c ctx.Ctx, token Address, blk *big.Int) (Price, error)
}

// CurveRouter prices Curve LP tokens.
type CurveRouter interface {
	Router
	// IsLpToken reports whether a registry valid at blk maps token to a pool.
	IsLpToken(c ctx.Ctx, token Address, blk *big.Int) bool
}

// RouterCfg carries what a router needs to value a composite token. Pricer
// is the resolver the router recurses into.
type RouterCfg struct {
	Network   *NetworkConfig
	TokenRepo TokenRepo
	Pricer    UsdPricer
}
