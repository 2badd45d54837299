package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidAt(t *testing.T) {
	req := require.New(t)
	o := OracleContract{Address: "0x47fb2585d2c56fe188d0e6ec628a38b74fceeedf", FirstValidBlock: 12864088}

	req.True(o.ValidAt(nil))
	req.True(o.ValidAt(big.NewInt(12864088)))
	req.True(o.ValidAt(big.NewInt(15000000)))
	req.False(o.ValidAt(big.NewInt(12864087)))
	req.True(OracleContract{}.ValidAt(big.NewInt(0)))
}

func TestAddressSet(t *testing.T) {
	req := require.New(t)
	s := NewAddressSet("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")

	req.True(s.Contains("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"))
	req.True(s.Contains("0xA0B86991C6218B36C1D19D4A2E9EB0CE3606EB48"))
	req.False(s.Contains("0xdac17f958d2ee523a2206206994597c13d831ec7"))

	var empty AddressSet
	req.False(empty.Contains("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"))
}

func TestNetworkConfigLookups(t *testing.T) {
	req := require.New(t)
	usdc := Address("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	crv := Address("0xd533a949740bb3306d119cc777fa900ba034cd52")
	n := &NetworkConfig{
		Denylists:        map[Source]AddressSet{SourceYearnLens: NewAddressSet(crv)},
		HardcodedStables: NewAddressSet(usdc),
		OracleOverrides:  map[Address]Source{crv: SourceCurveCalculations},
	}

	req.True(n.IsDenied(SourceYearnLens, "0xD533a949740bb3306d119CC777fa900bA034cd52"))
	req.False(n.IsDenied(SourceChainlink, crv))
	req.True(n.IsHardcodedStable(usdc))
	req.False(n.IsHardcodedStable(crv))

	src, ok := n.OverrideFor("0xD533a949740bb3306d119CC777fa900bA034cd52")
	req.True(ok)
	req.Equal(SourceCurveCalculations, src)
	_, ok = n.OverrideFor(usdc)
	req.False(ok)

	_, ok = (&NetworkConfig{}).OverrideFor(usdc)
	req.False(ok)

	native := &NetworkConfig{NativeToken: "0x0000000000000000000000000000000000001010"}
	req.True(native.IsNative("0x0000000000000000000000000000000000001010"))
	req.False(native.IsNative(NativeSentinel))
	req.False((&NetworkConfig{}).IsNative(EmptyAddress))
}

func TestAddress(t *testing.T) {
	req := require.New(t)
	req.True(Address("").IsEmpty())
	req.True(EmptyAddress.IsEmpty())
	req.False(NativeSentinel.IsEmpty())
	req.True(Address("0xABC").Equals("0xabc"))
	req.Equal(Address("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"),
		FromCommon(Address("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48").ToCommon()))
	req.Equal("1000", Pow10(3).String())
}
