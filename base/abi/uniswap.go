package abi

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	UniswapV2FactoryABI abi.ABI
	UniswapV2PairABI    abi.ABI
)

func init() {
	UniswapV2FactoryABI = mustParse("uniswap v2 factory", uniswapV2FactoryABIJson)
	UniswapV2PairABI = mustParse("uniswap v2 pair", uniswapV2PairABIJson)
}

var uniswapV2FactoryABIJson = `
[
  {
    "constant": true,
    "inputs": [
      { "internalType": "address", "name": "", "type": "address" },
      { "internalType": "address", "name": "", "type": "address" }
    ],
    "name": "getPair",
    "outputs": [{ "internalType": "address", "name": "", "type": "address" }],
    "payable": false,
    "stateMutability": "view",
    "type": "function"
  }
]
`

var uniswapV2PairABIJson = `
[
  {
    "constant": true,
    "inputs": [],
    "name": "token0",
    "outputs": [{ "internalType": "address", "name": "", "type": "address" }],
    "payable": false,
    "stateMutability": "view",
    "type": "function"
  },
  {
    "constant": true,
    "inputs": [],
    "name": "token1",
    "outputs": [{ "internalType": "address", "name": "", "type": "address" }],
    "payable": false,
    "stateMutability": "view",
    "type": "function"
  },
  {
    "constant": true,
    "inputs": [],
    "name": "getReserves",
    "outputs": [
      { "internalType": "uint112", "name": "_reserve0", "type": "uint112" },
      { "internalType": "uint112", "name": "_reserve1", "type": "uint112" },
      { "internalType": "uint32", "name": "_blockTimestampLast", "type": "uint32" }
    ],
    "payable": false,
    "stateMutability": "view",
    "type": "function"
  }
]
`
