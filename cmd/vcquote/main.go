package main

import (
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mr-tron/base58"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/solkitdev/virtualcurve-go/virtualcurve"
	"github.com/solkitdev/virtualcurve-go/virtualcurve/helpers"
	"github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

// vcquote quotes a swap against pool/config snapshot files without touching
// the chain. Snapshots are JSON, or base58-encoded borsh blobs produced by
// the helpers codec.

func main() {
	pflag.String("pool", "", "pool snapshot file (.json, or base58 borsh)")
	pflag.String("config", "", "curve config snapshot file (.json, or base58 borsh)")
	pflag.String("amount", "", "input amount in raw token units")
	pflag.Bool("base-for-quote", false, "sell base token instead of buying it")
	pflag.Uint16("slippage-bps", 0, "slippage tolerance in basis points")
	pflag.Bool("referral", false, "quote with a referral fee split")
	pflag.Int64("point", 0, "activation clock point; 0 means current unix time")
	pflag.Uint8("out-decimals", 9, "output token decimals, display only")
	pflag.Bool("pretty", true, "human-friendly console output")
	pflag.Parse()

	v := viper.New()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatal().Err(err).Msg("binding flags")
	}
	v.SetEnvPrefix("VCQUOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if v.GetBool("pretty") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	pool, err := loadPool(v.GetString("pool"))
	if err != nil {
		log.Fatal().Err(err).Str("file", v.GetString("pool")).Msg("loading pool snapshot")
	}
	config, err := loadConfig(v.GetString("config"))
	if err != nil {
		log.Fatal().Err(err).Str("file", v.GetString("config")).Msg("loading config snapshot")
	}
	if !helpers.ValidateConfig(config) || !helpers.ValidatePoolFees(pool.PoolFees) {
		log.Fatal().Msg("snapshot failed validation")
	}

	amountIn, ok := new(big.Int).SetString(v.GetString("amount"), 10)
	if !ok || amountIn.Sign() <= 0 {
		log.Fatal().Str("amount", v.GetString("amount")).Msg("amount must be a positive integer")
	}

	point := v.GetInt64("point")
	if point == 0 {
		point = time.Now().Unix()
	}

	quote, err := virtualcurve.SwapQuote(pool, config, v.GetBool("base-for-quote"), amountIn, v.GetUint16("slippage-bps"), v.GetBool("referral"), big.NewInt(point))
	if err != nil {
		log.Fatal().Err(err).Msg("quoting swap")
	}

	outDecimals := int32(v.GetUint("out-decimals"))
	log.Info().
		Str("baseMint", pool.BaseMint.String()).
		Str("quoteMint", pool.QuoteMint.String()).
		Str("amountIn", quote.ActualInputAmount.String()).
		Str("outputAmount", quote.OutputAmount.String()).
		Str("outputUi", decimal.NewFromBigInt(quote.OutputAmount, -outDecimals).String()).
		Str("minimumAmountOut", quote.MinimumAmountOut.String()).
		Str("nextSqrtPrice", quote.NextSqrtPrice.String()).
		Str("tradingFee", quote.TradingFee.String()).
		Str("protocolFee", quote.ProtocolFee.String()).
		Str("referralFee", quote.ReferralFee.String()).
		Msg("swap quote")
}

func loadPool(path string) (*shared.VirtualPool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".json" {
		return helpers.ParsePoolSnapshot(data)
	}
	raw, err := base58.Decode(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, err
	}
	return helpers.DecodePoolSnapshot(raw)
}

func loadConfig(path string) (*shared.PoolConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".json" {
		return helpers.ParseConfigSnapshot(data)
	}
	raw, err := base58.Decode(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, err
	}
	return helpers.DecodeConfigSnapshot(raw)
}
