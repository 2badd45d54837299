// Package oracle reads token prices from on-chain price sources. Every
// adapter decides whether it may read before touching the chain, so a gated
// source costs no RPC call.
package oracle

import (
	"math/big"

	"golang.org/x/xerrors"

	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/base/log"
	"github.com/x-xyz/goprice/domain"
	"github.com/x-xyz/goprice/service/chain"
)

// gate returns ErrSourceGated when src may not be read for token at blk.
func gate(network *domain.NetworkConfig, src domain.Source, contract *domain.OracleContract, token domain.Address, blk *big.Int) error {
	switch {
	case contract == nil || contract.Address.IsEmpty():
		return xerrors.Errorf("%s not deployed on %s: %w", src, network.Network, domain.ErrSourceGated)
	case !contract.ValidAt(blk):
		return xerrors.Errorf("%s not deployed at block %s: %w", src, blk, domain.ErrSourceGated)
	case network.IsDenied(src, token):
		return xerrors.Errorf("%s denies %s: %w", src, token, domain.ErrSourceGated)
	}
	return nil
}

// unavailable logs the cause and reports the source as unavailable.
func unavailable(c ctx.Ctx, src domain.Source, method string, token domain.Address, blk *big.Int, err error) error {
	c.WithFields(log.Fields{
		"err":    err,
		"source": src,
		"method": method,
		"token":  token,
		"blk":    blk,
	}).Debug("price source read failed")
	return xerrors.Errorf("%s.%s(%s): %v: %w", src, method, token, err, domain.ErrSourceUnavailable)
}

// nonPositive reports a zero or negative answer, which sources use for "no
// price".
func nonPositive(c ctx.Ctx, src domain.Source, method string, token domain.Address, blk *big.Int, answer *big.Int) error {
	return unavailable(c, src, method, token, blk, xerrors.Errorf("answer %s", answer))
}

// NewSources returns the network's oracle sources in waterfall order.
// Unconfigured sources are still listed and gate themselves.
func NewSources(chainClient chain.Client, network *domain.NetworkConfig) []domain.OracleSource {
	return []domain.OracleSource{
		NewChainlink(chainClient, network),
		NewYearnLens(chainClient, network),
		NewAaveOracle(chainClient, network),
	}
}

// NewCalculations returns the calculation helpers tried after the routers.
func NewCalculations(chainClient chain.Client, network *domain.NetworkConfig) []domain.OracleSource {
	return []domain.OracleSource{
		NewCurveCalculations(chainClient, network),
		NewSushiCalculations(chainClient, network),
	}
}
