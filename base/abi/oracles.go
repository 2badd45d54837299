package abi

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	YearnLensABI         abi.ABI
	AaveOracleABI        abi.ABI
	CurveCalculationsABI abi.ABI
	SushiCalculationsABI abi.ABI
)

func init() {
	YearnLensABI = mustParse("yearn lens", yearnLensABIJson)
	AaveOracleABI = mustParse("aave oracle", aaveOracleABIJson)
	CurveCalculationsABI = mustParse("curve calculations", curveCalculationsABIJson)
	SushiCalculationsABI = mustParse("sushi calculations", sushiCalculationsABIJson)
}

var yearnLensABIJson = `
[
  {
    "inputs": [{ "internalType": "address", "name": "tokenAddress", "type": "address" }],
    "name": "getPriceUsdcRecommended",
    "outputs": [{ "internalType": "uint256", "name": "", "type": "uint256" }],
    "stateMutability": "view",
    "type": "function"
  }
]
`

var aaveOracleABIJson = `
[
  {
    "inputs": [{ "internalType": "address", "name": "asset", "type": "address" }],
    "name": "getAssetPrice",
    "outputs": [{ "internalType": "uint256", "name": "", "type": "uint256" }],
    "stateMutability": "view",
    "type": "function"
  }
]
`

var curveCalculationsABIJson = `
[
  {
    "inputs": [{ "internalType": "address", "name": "curveLpTokenAddress", "type": "address" }],
    "name": "getCurvePriceUsdc",
    "outputs": [{ "internalType": "uint256", "name": "", "type": "uint256" }],
    "stateMutability": "view",
    "type": "function"
  }
]
`

var sushiCalculationsABIJson = `
[
  {
    "inputs": [{ "internalType": "address", "name": "tokenAddress", "type": "address" }],
    "name": "getPriceUsdc",
    "outputs": [{ "internalType": "uint256", "name": "", "type": "uint256" }],
    "stateMutability": "view",
    "type": "function"
  }
]
`
