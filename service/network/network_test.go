package network

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/goprice/domain"
	"golang.org/x/xerrors"
)

func TestConfig(t *testing.T) {
	req := require.New(t)

	cfg, err := Config(1)
	req.NoError(err)
	req.Equal("mainnet", cfg.Network)
	req.NotNil(cfg.Chainlink)
	req.True(cfg.IsDenied(domain.SourceYearnLens, "0x5F98805A4E8be255a32880FDeC7F6728C6568bA0"))
	req.False(cfg.IsDenied(domain.SourceChainlink, "0x5F98805A4E8be255a32880FDeC7F6728C6568bA0"))

	cfg, err = ByName("Fantom")
	req.NoError(err)
	req.Equal(domain.ChainId(250), cfg.ChainId)
	req.Nil(cfg.Chainlink)
}

func TestConfigMissing(t *testing.T) {
	req := require.New(t)

	cfg, err := Config(31337)
	req.Nil(cfg)
	req.True(xerrors.Is(err, domain.ErrConfigMissing))

	_, err = ByName("ropsten")
	req.True(xerrors.Is(err, domain.ErrConfigMissing))
}

func TestTablesAreValid(t *testing.T) {
	req := require.New(t)
	for id, cfg := range byChainId {
		req.NoError(Validate(cfg), "chain %d", id)
		req.Equal(id, cfg.ChainId)
		req.NotEqual(cfg.WrappedNative, cfg.UsdReference)
		for _, r := range cfg.CurveRegistries {
			req.Equal(r.Address, r.Address.ToLower())
		}
	}
}

func TestValidateRejectsBadTable(t *testing.T) {
	req := require.New(t)
	req.Equal(domain.ErrConfigMissing, Validate(nil))
	req.Error(Validate(&domain.NetworkConfig{ChainId: 1, Network: "broken", WrappedNative: "0x1"}))
}
