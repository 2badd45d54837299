package repository

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goprice/base/abi"
	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/base/log"
	"github.com/x-xyz/goprice/domain"
	"github.com/x-xyz/goprice/service/chain"
)

const defaultCacheSize = 4096

type erc20Impl struct {
	chainClient chain.Client
	chainId     domain.ChainId
	decimals    *lru.Cache[domain.Address, int32]
}

// NewErc20Repo reads token metadata from the contracts of one chain.
// Decimals never change, so they are kept in process once read.
func NewErc20Repo(chainClient chain.Client, chainId domain.ChainId, cacheSize int) (domain.TokenRepo, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[domain.Address, int32](cacheSize)
	if err != nil {
		return nil, err
	}
	return &erc20Impl{
		chainClient: chainClient,
		chainId:     chainId,
		decimals:    cache,
	}, nil
}

func (im *erc20Impl) FindOne(c ctx.Ctx, address domain.Address) (*domain.Token, error) {
	address = address.ToLower()
	if dec, ok := im.decimals.Get(address); ok {
		return &domain.Token{Address: address, Decimals: dec}, nil
	}

	// decimals are read at head, a token deployed after a historical block
	// still reports them
	res, err := im.chainClient.Call(c, im.chainId, address.ToCommon(), nil, abi.ERC20ABI, "decimals")
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": im.chainId,
			"address": address,
		}).Warn("erc20 decimals failed")
		return nil, xerrors.Errorf("decimals of %s: %w", address, err)
	}

	dec := int32(res[0].(uint8))
	im.decimals.Add(address, dec)
	return &domain.Token{Address: address, Decimals: dec}, nil
}
