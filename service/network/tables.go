package network

import (
	"github.com/x-xyz/goprice/domain"
)

var mainnet = &domain.NetworkConfig{
	ChainId: 1,
	Network: "mainnet",

	Chainlink:         contract("0x47fb2585d2c56fe188d0e6ec628a38b74fceeedf", 12864088),
	YearnLens:         contract("0x83d95e0d5f402511db06817aff3f9ea88224b030", 12242339),
	AaveOracle:        contract("0x54586be62e3c3580375ae3723c145253060ca0c2", 16291078),
	CurveCalculations: contract("0x25bf7b72815476dd515044f9650bf79bad0df655", 12370088),
	SushiCalculations: contract("0x8263e161a855b644f582d9c164c66aabee53f927", 12692284),
	CurveRegistries: []domain.OracleContract{
		*contract("0x7d86446ddb609ed0f5f8684acf30380a356b2b4c", 11154794),
		*contract("0x8f942c20d02befc377d41445793068908e2250d0", 13986752),
		*contract("0x90e00ace148ca3b23ac1bc8c240c2a7dd9c2d7f5", 12195750),
		*contract("0xf98b45fa17de75fb1ad0e7afd971b0ca00e379fc", 15732062),
	},
	UniswapFactories: []domain.OracleContract{
		// sushiswap
		*contract("0xc0aee478e3658e2610c5f7a4a2e1777ce9e4f2ac", 10794229),
		// uniswap v2
		*contract("0x5c69bee701ef814a2b6a3edd4b1652cb9cc5aa6f", 10000835),
	},
	AaveOracleDecimals: 8,

	Denylists: map[domain.Source]domain.AddressSet{
		domain.SourceYearnLens: domain.NewAddressSet(
			"0x5f98805a4e8be255a32880fdec7f6728c6568ba0", // LUSD
			"0x8daebade922df735c38c80c7ebd708af50815faa", // tBTC
			"0x0316eb71485b0ab14103307bf65a021042c6d380", // HBTC
			"0xc4ad29ba4b3c580e6d59105fff484999997675ff", // crv3crypto
		),
		domain.SourceCurveCalculations: domain.NewAddressSet(
			"0xca3d75ac011bf5ad07a98d02f18225f9bd9a6bdf", // crvTricrypto
			"0xc4ad29ba4b3c580e6d59105fff484999997675ff", // crv3crypto
		),
		domain.SourceSushiCalculations: domain.NewAddressSet(
			"0xca3d75ac011bf5ad07a98d02f18225f9bd9a6bdf", // crvTricrypto
			"0xc4ad29ba4b3c580e6d59105fff484999997675ff", // crv3crypto
		),
	},
	HardcodedStables: domain.NewAddressSet(),

	NativeToken:           domain.NativeSentinel,
	WrappedNative:         "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
	WrappedNativeDecimals: 18,
	UsdReference:          "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48",
	UsdReferenceDecimals:  6,
}

var fantom = &domain.NetworkConfig{
	ChainId: 250,
	Network: "fantom",

	YearnLens:         contract("0x57aa88a0810dfe3f9b71a9b179dd8bf5f956c46a", 17091856),
	AaveOracle:        contract("0xfd6f3c1845604c8ae6c6e402ad17fb9885160754", 33142113),
	CurveCalculations: contract("0x0b53e9df372e72d8fdcdbedfbb56059957a37128", 27067399),
	SushiCalculations: contract("0x44536de2220987d098d1d29d3aafc7f7348e9ee4", 3809480),
	CurveRegistries: []domain.OracleContract{
		*contract("0x0f854ea9f38cea4b1c2fc79047e9d0134419d5d6", 5655918),
		*contract("0x4fb93d7d320e8a263f22f62c2059dfc2a8bcbc4c", 27552509),
	},
	UniswapFactories: []domain.OracleContract{
		// spookyswap
		*contract("0x152ee697f2e276fa89e96742e9bb9ab1f2e61be3", 3795376),
		// sushiswap
		*contract("0xc35dadb65012ec5796536bd9864ed8773abc74c4", 2457904),
	},
	AaveOracleDecimals: 8,

	Denylists: map[domain.Source]domain.AddressSet{
		domain.SourceCurveCalculations: domain.NewAddressSet(
			"0x58e57ca18b7a47112b877e31929798cd3d703b0f", // crv3crypto
		),
		domain.SourceSushiCalculations: domain.NewAddressSet(
			"0x58e57ca18b7a47112b877e31929798cd3d703b0f", // crv3crypto
		),
	},
	HardcodedStables: domain.NewAddressSet(),

	NativeToken:           domain.NativeSentinel,
	WrappedNative:         "0x21be370d5312f44cb42ce377bc9b8a0cef1a4c83",
	WrappedNativeDecimals: 18,
	UsdReference:          "0x04068da6c83afcfa0e13ba15a6696662335d5b75",
	UsdReferenceDecimals:  6,
}

var polygon = &domain.NetworkConfig{
	ChainId: 137,
	Network: "matic",

	AaveOracle: contract("0xb023e699f5a33916ea823a16485e259257ca8bd1", 25826028),
	CurveRegistries: []domain.OracleContract{
		*contract("0x094d12e5b541784701fd8d65f11fc0598fbc6332", 13991825),
		*contract("0x47bb542b9de58b970ba50c9dae444ddb4c16751a", 23556360),
	},
	UniswapFactories: []domain.OracleContract{
		// quickswap
		*contract("0x5757371414417b8c6caad45baef941abc7d3ab32", 4931780),
		// sushiswap
		*contract("0xc35dadb65012ec5796536bd9864ed8773abc74c4", 11333218),
	},
	AaveOracleDecimals: 8,

	Denylists: map[domain.Source]domain.AddressSet{},
	HardcodedStables: domain.NewAddressSet(
		"0x2791bca1f2de4661ed88a30c99a7a9449aa84174", // USDC.e
	),

	NativeToken:           domain.NativeSentinel,
	WrappedNative:         "0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270",
	WrappedNativeDecimals: 18,
	UsdReference:          "0x2791bca1f2de4661ed88a30c99a7a9449aa84174",
	UsdReferenceDecimals:  6,
}

var arbitrum = &domain.NetworkConfig{
	ChainId: 42161,
	Network: "arbitrum-one",

	AaveOracle:        contract("0xb56c2f0b653b2e0b10c9b928c8580ac5df02c7c7", 7742429),
	CurveCalculations: contract("0x3268c3bda100ef0ff3c2d044f23eab62c80d78d2", 2237983),
	SushiCalculations: contract("0x5ea7e501c9a23f4a76dc7d33a11d995b13a1dd25", 2179522),
	CurveRegistries: []domain.OracleContract{
		*contract("0x445fe580ef8d70ff569ab36e80c647af338db351", 1362056),
		*contract("0x0e9fbb167df83ede3240d6a5fa5d40c4d5a8a5c7", 5281256),
	},
	UniswapFactories: []domain.OracleContract{
		// sushiswap
		*contract("0xc35dadb65012ec5796536bd9864ed8773abc74c4", 70),
	},
	AaveOracleDecimals: 8,

	Denylists: map[domain.Source]domain.AddressSet{
		domain.SourceSushiCalculations: domain.NewAddressSet(
			"0x8e0b8c8bb9db49a46697f3a5bb8a308e744821d2", // tricrypto
		),
	},
	HardcodedStables: domain.NewAddressSet(
		"0xd85e038593d7a098614721eae955ec2022b9b91b", // gDAI
	),

	NativeToken:           domain.NativeSentinel,
	WrappedNative:         "0x82af49447d8a07e3bd95bd0d56f35241523fbab1",
	WrappedNativeDecimals: 18,
	UsdReference:          "0xff970a61a04b1ca14834a43f5de4533ebddb5cc8",
	UsdReferenceDecimals:  6,
}
