package domain

import (
	"math/big"
)

// OracleContract is a source contract and the first block it can be read at.
type OracleContract struct {
	Address         Address `validate:"required,eth_addr"`
	FirstValidBlock uint64
}

// ValidAt reports whether the contract exists at blk. A nil block means the
// chain head, where every configured contract is valid.
func (o OracleContract) ValidAt(blk *big.Int) bool {
	if blk == nil {
		return true
	}
	return blk.Cmp(new(big.Int).SetUint64(o.FirstValidBlock)) >= 0
}

// NetworkConfig is the immutable per-network source table. A nil source
// means the network has no such deployment.
type NetworkConfig struct {
	ChainId ChainId `validate:"required"`
	Network string  `validate:"required"`

	Chainlink         *OracleContract
	YearnLens         *OracleContract
	AaveOracle        *OracleContract
	CurveCalculations *OracleContract
	SushiCalculations *OracleContract
	CurveRegistries   []OracleContract `validate:"dive"`
	UniswapFactories  []OracleContract `validate:"dive"`

	AaveOracleDecimals int32 `validate:"gte=0,lte=36"`

	Denylists        map[Source]AddressSet
	HardcodedStables AddressSet
	// OracleOverrides moves the named source to the front of the waterfall
	// for one token.
	OracleOverrides map[Address]Source

	NativeToken           Address `validate:"required,eth_addr"`
	WrappedNative         Address `validate:"required,eth_addr"`
	WrappedNativeDecimals int32   `validate:"gte=0,lte=36"`
	UsdReference          Address `validate:"required,eth_addr"`
	UsdReferenceDecimals  int32   `validate:"gte=0,lte=36"`
}

func (n *NetworkConfig) IsDenied(src Source, token Address) bool {
	return n.Denylists[src].Contains(token)
}

func (n *NetworkConfig) IsHardcodedStable(token Address) bool {
	return n.HardcodedStables.Contains(token)
}

// IsNative reports whether token is the network's native coin placeholder.
func (n *NetworkConfig) IsNative(token Address) bool {
	return !n.NativeToken.IsEmpty() && n.NativeToken.Equals(token)
}

func (n *NetworkConfig) OverrideFor(token Address) (Source, bool) {
	if n.OracleOverrides == nil {
		return SourceNone, false
	}
	src, ok := n.OracleOverrides[token.ToLower()]
	return src, ok
}
