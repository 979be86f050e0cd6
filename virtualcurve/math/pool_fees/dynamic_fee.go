package pool_fees

import (
	"math/big"

	vc "github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

func IsDynamicFeeEnabled(dynamicFee vc.DynamicFeeConfig) bool {
	return dynamicFee.Initialized != 0
}

// GetVariableFeeNumerator is the volatility surcharge:
// ceil((volatilityAccumulator * binStep)^2 * variableFeeControl / 1e11).
// The ceiling comes from adding the scaling offset before the floor division.
func GetVariableFeeNumerator(dynamicFee vc.DynamicFeeConfig, volatilityTracker vc.VolatilityTracker) *big.Int {
	if !IsDynamicFeeEnabled(dynamicFee) {
		return big.NewInt(0)
	}
	volatilityAccumulator := volatilityTracker.VolatilityAccumulator.BigInt()
	if volatilityAccumulator.Sign() == 0 {
		return big.NewInt(0)
	}
	volatilityTimesBinStep := new(big.Int).Mul(volatilityAccumulator, big.NewInt(int64(dynamicFee.BinStep)))
	squareVfaBin := new(big.Int).Mul(volatilityTimesBinStep, volatilityTimesBinStep)
	vFee := new(big.Int).Mul(squareVfaBin, big.NewInt(int64(dynamicFee.VariableFeeControl)))
	numerator := new(big.Int).Add(vFee, vc.DynamicFeeRoundingOffset)
	return numerator.Div(numerator, vc.DynamicFeeScalingFactor)
}
