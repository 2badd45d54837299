package oracle

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/x-xyz/goprice/base/abi"
	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/domain"
	"github.com/x-xyz/goprice/service/chain"
)

// usdcPrecision is the precision of helpers quoting in USDC units.
const usdcPrecision = 6

// lookupImpl is a source answering with one `method(token) returns (uint256)`
// read.
type lookupImpl struct {
	chainClient chain.Client
	network     *domain.NetworkConfig
	source      domain.Source
	contract    *domain.OracleContract
	abi         ethabi.ABI
	method      string
	precision   int32
}

func (im *lookupImpl) Source() domain.Source {
	return im.source
}

func (im *lookupImpl) TryPrice(c ctx.Ctx, token domain.Address, blk *big.Int) (domain.Price, error) {
	if err := gate(im.network, im.source, im.contract, token, blk); err != nil {
		return domain.UnknownPrice(), err
	}

	res, err := im.chainClient.Call(c, im.network.ChainId, im.contract.Address.ToCommon(), blk, im.abi, im.method, token.ToCommon())
	if err != nil {
		return domain.UnknownPrice(), unavailable(c, im.source, im.method, token, blk, err)
	}
	answer := res[0].(*big.Int)
	if answer.Sign() <= 0 {
		return domain.UnknownPrice(), nonPositive(c, im.source, im.method, token, blk, answer)
	}

	return domain.NewPrice(answer, im.precision, im.source), nil
}

// NewYearnLens reads the recommended USDC price of the Yearn lens oracle.
func NewYearnLens(chainClient chain.Client, network *domain.NetworkConfig) domain.OracleSource {
	return &lookupImpl{
		chainClient: chainClient,
		network:     network,
		source:      domain.SourceYearnLens,
		contract:    network.YearnLens,
		abi:         abi.YearnLensABI,
		method:      "getPriceUsdcRecommended",
		precision:   usdcPrecision,
	}
}

// NewAaveOracle reads the Aave price oracle, quoted with the network's
// configured decimals.
func NewAaveOracle(chainClient chain.Client, network *domain.NetworkConfig) domain.OracleSource {
	return &lookupImpl{
		chainClient: chainClient,
		network:     network,
		source:      domain.SourceAaveOracle,
		contract:    network.AaveOracle,
		abi:         abi.AaveOracleABI,
		method:      "getAssetPrice",
		precision:   network.AaveOracleDecimals,
	}
}

// NewCurveCalculations reads the Yearn Curve LP calculations helper.
func NewCurveCalculations(chainClient chain.Client, network *domain.NetworkConfig) domain.OracleSource {
	return &lookupImpl{
		chainClient: chainClient,
		network:     network,
		source:      domain.SourceCurveCalculations,
		contract:    network.CurveCalculations,
		abi:         abi.CurveCalculationsABI,
		method:      "getCurvePriceUsdc",
		precision:   usdcPrecision,
	}
}

// NewSushiCalculations reads the Yearn Sushiswap calculations helper.
func NewSushiCalculations(chainClient chain.Client, network *domain.NetworkConfig) domain.OracleSource {
	return &lookupImpl{
		chainClient: chainClient,
		network:     network,
		source:      domain.SourceSushiCalculations,
		contract:    network.SushiCalculations,
		abi:         abi.SushiCalculationsABI,
		method:      "getPriceUsdc",
		precision:   usdcPrecision,
	}
}
