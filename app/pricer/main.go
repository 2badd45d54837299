package main

import (
	"fmt"
	"math/big"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/base/database/redisclient"
	"github.com/x-xyz/goprice/base/log"
	"github.com/x-xyz/goprice/base/metrics"
	"github.com/x-xyz/goprice/base/validator"
	"github.com/x-xyz/goprice/domain"
	"github.com/x-xyz/goprice/domain/keys"
	"github.com/x-xyz/goprice/service/cache"
	"github.com/x-xyz/goprice/service/cache/provider"
	"github.com/x-xyz/goprice/service/cache/provider/compound"
	"github.com/x-xyz/goprice/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/goprice/service/cache/provider/redis"
	"github.com/x-xyz/goprice/service/chain"
	"github.com/x-xyz/goprice/service/network"
	"github.com/x-xyz/goprice/service/redis"
	price_usecase "github.com/x-xyz/goprice/stores/price/usecase"
	token_repository "github.com/x-xyz/goprice/stores/token/repository"
)

func init() {
	pflag.String("config", "infra/configs/pricer/config.yaml", "config file")
	pflag.String("network", "mainnet", "network name")
	pflag.StringSlice("token", nil, "token address, comma separated or repeated for a batch")
	pflag.String("block", "", "block number, latest when empty")
	pflag.String("amount", "", "raw token amount to value, optional")
	pflag.Bool("debug", false, "debug logging")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	log.SetDebug(viper.GetBool("debug"))
	if viper.GetBool(`debug`) {
		log.Log().Info("Pricer RUN on DEBUG mode")
	}
}

func main() {
	context := ctx.Background()

	networkName := viper.GetString("network")
	cfg, err := network.ByName(networkName)
	if err != nil {
		// an unknown network is never defaulted
		context.WithFields(log.Fields{"err": err, "network": networkName}).Panic("network.ByName failed")
	}
	context = ctx.WithValue(context, "network", cfg.Network)

	tokens := []domain.Address{}
	for _, t := range viper.GetStringSlice("token") {
		if !validator.IsValidAddress(t) {
			context.WithField("token", t).Error("invalid token address")
			os.Exit(2)
		}
		tokens = append(tokens, domain.Address(t))
	}
	if len(tokens) == 0 {
		context.Error("no token given")
		os.Exit(2)
	}
	blk, err := parseBlock(viper.GetString("block"))
	if err != nil {
		context.WithFields(log.Fields{"err": err, "block": viper.GetString("block")}).Error("invalid block")
		os.Exit(2)
	}

	// init chain service
	rpcs := map[domain.ChainId]string{cfg.ChainId: viper.GetString(fmt.Sprintf("networks.%s.rpcUrl", cfg.Network))}
	archiveRpcs := map[domain.ChainId]string{}
	if url := viper.GetString(fmt.Sprintf("networks.%s.archiveRpcUrl", cfg.Network)); url != "" {
		archiveRpcs[cfg.ChainId] = url
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        rpcs,
		ArchiveRpcUrls: archiveRpcs,
		MaxConcurrency: viper.GetInt("rpc.maxConcurrency"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}

	tokenRepo, err := token_repository.NewErc20Repo(chainService, cfg.ChainId, viper.GetInt("erc20.cacheSize"))
	if err != nil {
		context.WithField("err", err).Panic("NewErc20Repo failed")
	}

	priceUsecase := price_usecase.New(&price_usecase.PriceUsecaseCfg{
		ChainClient:  chainService,
		Network:      cfg,
		TokenRepo:    tokenRepo,
		Cache:        initCache(context),
		Metrics:      metrics.New("pricer"),
		MaxDepth:     viper.GetInt("price.maxDepth"),
		BatchWorkers: viper.GetInt("price.batchWorkers"),
	})

	if timeout := viper.GetDuration("price.timeout"); timeout > 0 {
		var cancel func()
		context, cancel = ctx.WithTimeout(context, timeout)
		defer cancel()
	}

	if len(tokens) > 1 {
		prices, err := priceUsecase.GetUsdPricesPerToken(context, tokens, blk)
		if err != nil {
			context.WithField("err", err).Panic("GetUsdPricesPerToken failed")
		}
		for _, token := range tokens {
			p := prices[token]
			if p.IsUnknown() {
				fmt.Printf("%s %s unknown\n", cfg.Network, token)
				continue
			}
			fmt.Printf("%s %s %s %s\n", cfg.Network, token, p.UsdPrice().String(), p.Provenance)
		}
		return
	}

	token := tokens[0]
	price, err := priceUsecase.GetUsdPricePerToken(context, token, blk)
	if xerrors.Is(err, domain.ErrNoPriceFound) {
		fmt.Printf("%s %s unknown\n", cfg.Network, token)
		os.Exit(1)
	} else if err != nil {
		context.WithField("err", err).Panic("GetUsdPricePerToken failed")
	}
	fmt.Printf("%s %s %s %s\n", cfg.Network, token, price.UsdPrice().String(), price.Provenance)

	if raw := viper.GetString("amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			context.WithFields(log.Fields{"err": err, "amount": raw}).Error("invalid amount")
			os.Exit(2)
		}
		usd, err := priceUsecase.GetLiquidityBoundUsdPrice(context, token, amount, blk)
		if err != nil {
			context.WithField("err", err).Panic("GetLiquidityBoundUsdPrice failed")
		}
		fmt.Printf("value %s usd\n", usd.String())
	}
}

func parseBlock(s string) (*big.Int, error) {
	if s == "" || s == "latest" {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(n), nil
}

// initCache stacks the in-process cache over redis when one is configured.
func initCache(context ctx.Ctx) cache.Service {
	if !viper.GetBool("cache.enabled") {
		return nil
	}

	layers := []provider.Provider{
		primitive.NewPrimitive("price", viper.GetInt("cache.sizeMB")),
	}
	if uri := viper.GetString("redis_cache.uri"); uri != "" {
		context.Info("init redis cache")
		name := viper.GetString("redis_cache.name")
		pool, err := redisclient.ConnectRedis(uri, viper.GetString("redis_cache.password"), redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		})
		if err != nil {
			context.WithField("err", err).Warn("redis unavailable, in-process cache only")
		} else {
			layers = append(layers, redisProvider.NewRedis(redis.New(name, metrics.New(name), &redis.Pools{Src: pool})))
		}
	}

	return cache.New(cache.ServiceConfig{
		Ttl:     viper.GetDuration("cache.ttl"),
		Pfx:     keys.PfxPrice,
		Cache:   compound.NewCompound(layers...),
		Metrics: metrics.New("pricecache"),
	})
}
