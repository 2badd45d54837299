package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

func mustParse(name, raw string) abi.ABI {
	_abi, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("Failed to parse " + name + " ABI")
	}
	return _abi
}
