package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	Big0  = big.NewInt(0)
	Big10 = big.NewInt(10)
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// NativeSentinel is the pseudo address protocols use for the chain's native coin.
const NativeSentinel = Address("0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")

// UsdDenomination is the Chainlink denomination address for USD.
const UsdDenomination = Address("0x0000000000000000000000000000000000000348")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

func FromCommon(a common.Address) Address {
	return Address(strings.ToLower(a.Hex()))
}

// AddressSet is a case-insensitive set of addresses.
type AddressSet map[Address]struct{}

func NewAddressSet(addrs ...Address) AddressSet {
	s := make(AddressSet, len(addrs))
	for _, a := range addrs {
		s[a.ToLower()] = struct{}{}
	}
	return s
}

func (s AddressSet) Contains(a Address) bool {
	if s == nil {
		return false
	}
	_, ok := s[a.ToLower()]
	return ok
}

// Pow10 returns 10^n as a new big.Int.
func Pow10(n int64) *big.Int {
	return new(big.Int).Exp(Big10, big.NewInt(n), nil)
}
