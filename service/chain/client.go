package chain

import (
	"errors"
	"math/big"

	goeth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/base/ethereum"
	"github.com/x-xyz/goprice/base/log"
	"github.com/x-xyz/goprice/domain"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

type ClientCfg struct {
	RpcUrls        map[domain.ChainId]string
	ArchiveRpcUrls map[domain.ChainId]string
	// MaxConcurrency caps in-flight calls per endpoint, 0 means unbounded.
	MaxConcurrency int
}

// Client is the "read contract state at block" primitive. A nil block reads
// the chain head; historical blocks go to the archive node when one is set.
type Client interface {
	Call(bCtx.Ctx, domain.ChainId, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
}

// ContractCaller is the part of ethclient.Client this package needs.
type ContractCaller = ethereum.ContractCaller

type clientImpl struct {
	clients        map[domain.ChainId]ContractCaller
	archiveClients map[domain.ChainId]ContractCaller
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	dial := func(urls map[domain.ChainId]string) map[domain.ChainId]ContractCaller {
		clients := make(map[domain.ChainId]ContractCaller)
		for chainId, url := range urls {
			client, err := ethclient.DialContext(ctx, url)
			if err != nil {
				anyerr = err
				ctx.WithFields(log.Fields{
					"err":     err,
					"chainId": chainId,
					"url":     url,
				}).Warn("failed to dial rpc")
				continue
			}
			if cfg.MaxConcurrency > 0 {
				clients[chainId] = ethereum.NewThrottledCaller(client, cfg.MaxConcurrency)
				continue
			}
			clients[chainId] = client
		}
		return clients
	}
	return &clientImpl{
		clients:        dial(cfg.RpcUrls),
		archiveClients: dial(cfg.ArchiveRpcUrls),
	}, anyerr
}

// NewClientWithCallers skips dialing, mostly for tests and simulated backends.
func NewClientWithCallers(clients, archiveClients map[domain.ChainId]ContractCaller) Client {
	return &clientImpl{clients: clients, archiveClients: archiveClients}
}

func (c *clientImpl) pick(chainId domain.ChainId, blk *big.Int) (ContractCaller, bool) {
	if blk != nil {
		if client, ok := c.archiveClients[chainId]; ok {
			return client, true
		}
	}
	client, ok := c.clients[chainId]
	return client, ok
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.pick(chainId, blk)
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := goeth.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		// reverts are an expected outcome for most price reads
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
			"to":     addr.Hex(),
			"blk":    blk,
		}).Debug("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
			"to":     addr.Hex(),
		}).Debug("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}
