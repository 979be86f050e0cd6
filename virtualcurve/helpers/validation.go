package helpers

import (
	"math/big"

	"github.com/solkitdev/virtualcurve-go/virtualcurve/math/pool_fees"
	"github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

// ValidateCurve checks the bonding-curve invariants: at most MaxCurvePoint
// breakpoints, strictly ascending sqrt prices, and the final breakpoint
// pinned to the maximum sqrt price. Zero-liquidity stubs are permitted; the
// walker skips them.
func ValidateCurve(curve []shared.LiquidityDistributionConfig) bool {
	if len(curve) == 0 || len(curve) > shared.MaxCurvePoint {
		return false
	}
	prev := big.NewInt(0)
	for _, c := range curve {
		sqrtPrice := c.SqrtPrice.BigInt()
		if sqrtPrice.Cmp(prev) <= 0 {
			return false
		}
		prev = sqrtPrice
	}
	return prev.Cmp(shared.MaxSqrtPrice) == 0
}

func ValidateFeeScheduler(numberOfPeriod uint16, periodFrequency, reductionFactor, cliffFeeNumerator *big.Int, feeSchedulerMode shared.FeeSchedulerMode) bool {
	if periodFrequency.Sign() != 0 || numberOfPeriod != 0 || reductionFactor.Sign() != 0 {
		if numberOfPeriod == 0 || periodFrequency.Sign() == 0 || reductionFactor.Sign() == 0 {
			return false
		}
	}
	minFeeNumerator, err := pool_fees.GetFeeSchedulerMinBaseFeeNumerator(cliffFeeNumerator, numberOfPeriod, reductionFactor, feeSchedulerMode)
	if err != nil {
		return false
	}
	maxFeeNumerator := pool_fees.GetFeeSchedulerMaxBaseFeeNumerator(cliffFeeNumerator)
	if minFeeNumerator.Cmp(big.NewInt(shared.MinFeeNumerator)) < 0 || maxFeeNumerator.Cmp(big.NewInt(shared.MaxFeeNumerator)) > 0 {
		return false
	}
	return true
}

func ValidateDynamicFee(dynamicFee shared.DynamicFeeConfig) bool {
	if dynamicFee.Initialized == 0 {
		return true
	}
	if dynamicFee.BinStep != uint16(shared.BinStepBpsDefault) {
		return false
	}
	if dynamicFee.BinStepU128.BigInt().Cmp(shared.BinStepBpsU128Default) != 0 {
		return false
	}
	if dynamicFee.FilterPeriod >= dynamicFee.DecayPeriod {
		return false
	}
	if dynamicFee.ReductionFactor > uint16(shared.MaxBasisPoint) {
		return false
	}
	if dynamicFee.VariableFeeControl > uint32(shared.U24Max) {
		return false
	}
	if dynamicFee.MaxVolatilityAccumulator > uint32(shared.U24Max) {
		return false
	}
	return true
}

func ValidatePoolFees(poolFees shared.PoolFeesConfig) bool {
	if poolFees.BaseFee.CliffFeeNumerator < uint64(shared.MinFeeNumerator) {
		return false
	}
	if poolFees.ProtocolFeePercent > 100 || poolFees.ReferralFeePercent > 100 {
		return false
	}
	mode := shared.FeeSchedulerMode(poolFees.BaseFee.FeeSchedulerMode)
	if mode != shared.FeeSchedulerModeLinear && mode != shared.FeeSchedulerModeExponential {
		return false
	}
	if !ValidateFeeScheduler(poolFees.BaseFee.NumberOfPeriod, new(big.Int).SetUint64(poolFees.BaseFee.PeriodFrequency), new(big.Int).SetUint64(poolFees.BaseFee.ReductionFactor), new(big.Int).SetUint64(poolFees.BaseFee.CliffFeeNumerator), mode) {
		return false
	}
	return ValidateDynamicFee(poolFees.DynamicFee)
}

func ValidateConfig(config *shared.PoolConfig) bool {
	if config == nil {
		return false
	}
	mode := shared.CollectFeeMode(config.CollectFeeMode)
	if mode != shared.CollectFeeModeQuoteToken && mode != shared.CollectFeeModeOutputToken {
		return false
	}
	return ValidateCurve(config.Curve)
}
