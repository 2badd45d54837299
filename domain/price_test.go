package domain

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	req := require.New(t)

	p := NewPrice(big.NewInt(100020000), 8, SourceChainlink)
	req.False(p.IsUnknown())
	req.Equal("1.0002", p.UsdPrice().String())
	req.Equal("1.0002@chainlink", p.String())

	// above the max precision the magnitude is truncated
	m, _ := new(big.Int).SetString("1030000000000000000000000000000000000000", 10)
	p = NewPrice(m, 39, SourceCurveRouter)
	req.Equal(int32(MaxPrecision), p.Precision)
	req.Equal("1.03", p.UsdPrice().String())

	req.True(NewPrice(big.NewInt(-1), 8, SourceChainlink).IsUnknown())
	req.True(NewPrice(nil, 8, SourceChainlink).IsUnknown())

	// the input is not aliased
	in := big.NewInt(5)
	p = NewPrice(in, 0, SourceHardcoded)
	in.SetInt64(6)
	req.Equal(int64(5), p.Magnitude.Int64())
}

func TestNewPriceFromDecimal(t *testing.T) {
	req := require.New(t)

	p := NewPriceFromDecimal(decimal.RequireFromString("2000.123456789"), 6, SourceUniswapForksRouter)
	req.Equal("2000.123456", p.UsdPrice().String())
	req.Equal(int32(6), p.Precision)

	req.True(NewPriceFromDecimal(decimal.NewFromInt(-1), 6, SourceUniswapForksRouter).IsUnknown())
}

func TestUnknownPrice(t *testing.T) {
	req := require.New(t)

	p := UnknownPrice()
	req.True(p.IsUnknown())
	req.True(p.UsdPrice().IsZero())
	req.Equal("unknown", p.String())
	req.True(Price{}.UsdPrice().IsZero())

	// zero answered by a named source is still a known zero
	req.False(NewPrice(big.NewInt(0), 0, SourceChainlink).IsUnknown())
}

func TestOneDollar(t *testing.T) {
	req := require.New(t)
	p := OneDollar()
	req.Equal(SourceHardcoded, p.Provenance)
	req.True(p.UsdPrice().Equal(decimal.NewFromInt(1)))
	req.True(p.WithLiquidity(decimal.NewFromInt(10)).Liquidity.Equal(decimal.NewFromInt(10)))
	req.True(p.Liquidity.IsZero())
}
