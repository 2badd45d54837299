package abi

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	CurveRegistryABI abi.ABI
	CurvePoolABI     abi.ABI
	// price_oracle(uint256) lives in its own ABI since go-ethereum renames
	// overloaded methods.
	CurveTricryptoPoolABI abi.ABI
)

func init() {
	CurveRegistryABI = mustParse("curve registry", curveRegistryABIJson)
	CurvePoolABI = mustParse("curve pool", curvePoolABIJson)
	CurveTricryptoPoolABI = mustParse("curve tricrypto pool", curveTricryptoPoolABIJson)
}

var curveRegistryABIJson = `
[
  {
    "name": "get_pool_from_lp_token",
    "inputs": [{ "name": "arg0", "type": "address" }],
    "outputs": [{ "name": "", "type": "address" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "name": "get_underlying_coins",
    "inputs": [{ "name": "_pool", "type": "address" }],
    "outputs": [{ "name": "", "type": "address[8]" }],
    "stateMutability": "view",
    "type": "function"
  }
]
`

var curvePoolABIJson = `
[
  {
    "name": "coins",
    "inputs": [{ "name": "arg0", "type": "uint256" }],
    "outputs": [{ "name": "", "type": "address" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "name": "balances",
    "inputs": [{ "name": "arg0", "type": "uint256" }],
    "outputs": [{ "name": "", "type": "uint256" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "name": "get_virtual_price",
    "inputs": [],
    "outputs": [{ "name": "", "type": "uint256" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "name": "price_oracle",
    "inputs": [],
    "outputs": [{ "name": "", "type": "uint256" }],
    "stateMutability": "view",
    "type": "function"
  }
]
`

var curveTricryptoPoolABIJson = `
[
  {
    "name": "price_oracle",
    "inputs": [{ "name": "k", "type": "uint256" }],
    "outputs": [{ "name": "", "type": "uint256" }],
    "stateMutability": "view",
    "type": "function"
  }
]
`
