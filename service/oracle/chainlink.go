package oracle

import (
	"math/big"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/x-xyz/goprice/base/abi"
	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/domain"
	"github.com/x-xyz/goprice/service/chain"
)

const feedDecimalsCacheSize = 1024

type chainlinkImpl struct {
	chainClient chain.Client
	network     *domain.NetworkConfig
	// feed decimals per token, so repeated lookups cost one latestRoundData
	decimals *lru.Cache[domain.Address, uint8]
}

// NewChainlink reads the token/USD feed of the Chainlink Feed Registry.
func NewChainlink(chainClient chain.Client, network *domain.NetworkConfig) domain.OracleSource {
	// only fails on a non-positive size
	decimals, _ := lru.New[domain.Address, uint8](feedDecimalsCacheSize)
	return &chainlinkImpl{
		chainClient: chainClient,
		network:     network,
		decimals:    decimals,
	}
}

func (im *chainlinkImpl) Source() domain.Source {
	return domain.SourceChainlink
}

func (im *chainlinkImpl) TryPrice(c ctx.Ctx, token domain.Address, blk *big.Int) (domain.Price, error) {
	if err := gate(im.network, domain.SourceChainlink, im.network.Chainlink, token, blk); err != nil {
		return domain.UnknownPrice(), err
	}

	registry := im.network.Chainlink.Address.ToCommon()
	base, quote := token.ToCommon(), domain.UsdDenomination.ToCommon()

	decimals, ok := im.decimals.Get(token.ToLower())
	if !ok {
		// the registry reverts for tokens without a USD feed
		res, err := im.chainClient.Call(c, im.network.ChainId, registry, blk, abi.ChainlinkFeedRegistryABI, "decimals", base, quote)
		if err != nil {
			return domain.UnknownPrice(), unavailable(c, domain.SourceChainlink, "decimals", token, blk, err)
		}
		decimals = res[0].(uint8)
		im.decimals.Add(token.ToLower(), decimals)
	}

	res, err := im.chainClient.Call(c, im.network.ChainId, registry, blk, abi.ChainlinkFeedRegistryABI, "latestRoundData", base, quote)
	if err != nil {
		return domain.UnknownPrice(), unavailable(c, domain.SourceChainlink, "latestRoundData", token, blk, err)
	}
	answer := res[1].(*big.Int)
	if answer.Sign() <= 0 {
		return domain.UnknownPrice(), nonPositive(c, domain.SourceChainlink, "latestRoundData", token, blk, answer)
	}

	return domain.NewPrice(answer, int32(decimals), domain.SourceChainlink), nil
}
