// Package network holds the compiled per-network source tables.
package network

import (
	"strings"

	"github.com/x-xyz/goprice/base/validator"
	"github.com/x-xyz/goprice/domain"
	"golang.org/x/xerrors"
)

var (
	byChainId = map[domain.ChainId]*domain.NetworkConfig{}
	byName    = map[string]*domain.NetworkConfig{}
)

func register(cfg *domain.NetworkConfig) {
	if err := validator.Struct(cfg); err != nil {
		panic("invalid network config " + cfg.Network + ": " + err.Error())
	}
	byChainId[cfg.ChainId] = cfg
	byName[strings.ToLower(cfg.Network)] = cfg
}

func init() {
	register(mainnet)
	register(fantom)
	register(polygon)
	register(arbitrum)
}

// Config returns the table for chainId. A missing table is fatal for the
// caller's unit of work.
func Config(chainId domain.ChainId) (*domain.NetworkConfig, error) {
	cfg, ok := byChainId[chainId]
	if !ok {
		return nil, xerrors.Errorf("chain %d: %w", chainId, domain.ErrConfigMissing)
	}
	return cfg, nil
}

func ByName(name string) (*domain.NetworkConfig, error) {
	cfg, ok := byName[strings.ToLower(name)]
	if !ok {
		return nil, xerrors.Errorf("network %q: %w", name, domain.ErrConfigMissing)
	}
	return cfg, nil
}

// Validate checks a hand built table, e.g. one assembled in tests or tools.
func Validate(cfg *domain.NetworkConfig) error {
	if cfg == nil {
		return domain.ErrConfigMissing
	}
	return validator.Struct(cfg)
}

func contract(addr domain.Address, firstValidBlock uint64) *domain.OracleContract {
	return &domain.OracleContract{Address: addr.ToLower(), FirstValidBlock: firstValidBlock}
}
