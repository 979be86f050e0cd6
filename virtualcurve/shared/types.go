package shared

import (
	"math/big"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
)

type ActivationType uint8

const (
	ActivationTypeSlot      ActivationType = 0
	ActivationTypeTimestamp ActivationType = 1
)

type CollectFeeMode uint8

const (
	CollectFeeModeQuoteToken  CollectFeeMode = 0
	CollectFeeModeOutputToken CollectFeeMode = 1
)

type FeeSchedulerMode uint8

const (
	FeeSchedulerModeLinear      FeeSchedulerMode = 0
	FeeSchedulerModeExponential FeeSchedulerMode = 1
)

type TradeDirection uint8

const (
	TradeDirectionBaseToQuote TradeDirection = 0
	TradeDirectionQuoteToBase TradeDirection = 1
)

type Rounding uint8

const (
	RoundingUp   Rounding = 0
	RoundingDown Rounding = 1
)

// BaseFeeConfig is the time-decayed trading fee schedule. The effective
// numerator starts at CliffFeeNumerator when the pool activates and decays
// once per PeriodFrequency, NumberOfPeriod times at most.
type BaseFeeConfig struct {
	CliffFeeNumerator uint64
	NumberOfPeriod    uint16
	PeriodFrequency   uint64
	ReductionFactor   uint64
	FeeSchedulerMode  uint8
}

// DynamicFeeConfig parameterizes the volatility surcharge. The running
// volatility state lives in VolatilityTracker on the pool snapshot and is
// read-only input here; the on-chain program owns its updates.
type DynamicFeeConfig struct {
	Initialized              uint8
	BinStep                  uint16
	BinStepU128              bin.Uint128
	FilterPeriod             uint16
	DecayPeriod              uint16
	ReductionFactor          uint16
	MaxVolatilityAccumulator uint32
	VariableFeeControl       uint32
}

type VolatilityTracker struct {
	LastUpdateTimestamp   uint64
	SqrtPriceReference    bin.Uint128
	VolatilityAccumulator bin.Uint128
	VolatilityReference   bin.Uint128
}

type PoolFeesConfig struct {
	BaseFee            BaseFeeConfig
	DynamicFee         DynamicFeeConfig
	ProtocolFeePercent uint8
	ReferralFeePercent uint8
}

// LiquidityDistributionConfig is one bonding-curve breakpoint. Liquidity is
// the capacity active up to this breakpoint's sqrt price; the final
// breakpoint's sqrt price equals MaxSqrtPrice.
type LiquidityDistributionConfig struct {
	SqrtPrice bin.Uint128
	Liquidity bin.Uint128
}

// PoolConfig is the immutable curve configuration shared by pools.
type PoolConfig struct {
	CollectFeeMode uint8
	ActivationType uint8
	Curve          []LiquidityDistributionConfig
}

// VirtualPool is a read-only snapshot of one pool's pricing state, decoded
// from the on-chain account by the caller and refreshed before each quote.
type VirtualPool struct {
	BaseMint          solanago.PublicKey
	QuoteMint         solanago.PublicKey
	SqrtPrice         bin.Uint128
	ActivationPoint   uint64
	PoolFees          PoolFeesConfig
	VolatilityTracker VolatilityTracker
}

// FeeMode is derived per quote from the collect-fee mode and trade direction,
// never stored.
type FeeMode struct {
	FeesOnInput     bool
	FeesOnBaseToken bool
	HasReferral     bool
}

type SwapResult struct {
	ActualInputAmount *big.Int
	OutputAmount      *big.Int
	NextSqrtPrice     *big.Int
	TradingFee        *big.Int
	ProtocolFee       *big.Int
	ReferralFee       *big.Int
}

type SwapQuoteResult struct {
	SwapResult
	MinimumAmountOut *big.Int
}

type FeeOnAmountResult struct {
	Amount      *big.Int
	ProtocolFee *big.Int
	TradingFee  *big.Int
	ReferralFee *big.Int
}

type SwapAmount struct {
	OutputAmount  *big.Int
	NextSqrtPrice *big.Int
	AmountLeft    *big.Int
}
