package domain

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// MaxPrecision bounds Price.Precision.
const MaxPrecision = 36

// DefaultPrecision is used for prices derived from decimal arithmetic.
const DefaultPrecision = 18

// Source names which on-chain source produced a price.
type Source string

const (
	SourceNone               Source = ""
	SourceHardcoded          Source = "hardcoded"
	SourceChainlink          Source = "chainlink"
	SourceYearnLens          Source = "yearnLens"
	SourceAaveOracle         Source = "aaveOracle"
	SourceCurveRouter        Source = "curveRouter"
	SourceUniswapForksRouter Source = "uniswapForksRouter"
	SourceCurveCalculations  Source = "curveCalculations"
	SourceSushiCalculations  Source = "sushiCalculations"
)

// Price is a fixed-point USD price: Magnitude / 10^Precision.
// A zero Magnitude with SourceNone is the unknown price.
type Price struct {
	Magnitude  *big.Int `json:"magnitude"`
	Precision  int32    `json:"precision"`
	Provenance Source   `json:"provenance"`
	// Liquidity is the USD depth backing the price, zero when the source
	// does not report one.
	Liquidity decimal.Decimal `json:"liquidity"`
}

func UnknownPrice() Price {
	return Price{Magnitude: new(big.Int)}
}

// NewPrice builds a price, rescaling down when precision exceeds MaxPrecision.
// A negative magnitude yields the unknown price.
func NewPrice(magnitude *big.Int, precision int32, src Source) Price {
	if magnitude == nil || magnitude.Sign() < 0 || precision < 0 {
		return UnknownPrice()
	}
	m := new(big.Int).Set(magnitude)
	if precision > MaxPrecision {
		m.Quo(m, Pow10(int64(precision-MaxPrecision)))
		precision = MaxPrecision
	}
	return Price{Magnitude: m, Precision: precision, Provenance: src}
}

// NewPriceFromDecimal truncates d at the given precision.
func NewPriceFromDecimal(d decimal.Decimal, precision int32, src Source) Price {
	if d.Sign() < 0 {
		return UnknownPrice()
	}
	if precision > MaxPrecision {
		precision = MaxPrecision
	}
	return NewPrice(d.Shift(precision).BigInt(), precision, src)
}

// OneDollar is the price of hardcoded stables.
func OneDollar() Price {
	return NewPrice(big.NewInt(1), 0, SourceHardcoded)
}

func (p Price) IsUnknown() bool {
	return p.Provenance == SourceNone && (p.Magnitude == nil || p.Magnitude.Sign() == 0)
}

func (p Price) UsdPrice() decimal.Decimal {
	if p.Magnitude == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(p.Magnitude, -p.Precision)
}

func (p Price) WithLiquidity(l decimal.Decimal) Price {
	p.Liquidity = l
	return p
}

func (p Price) String() string {
	if p.IsUnknown() {
		return "unknown"
	}
	return fmt.Sprintf("%s@%s", p.UsdPrice().String(), p.Provenance)
}
