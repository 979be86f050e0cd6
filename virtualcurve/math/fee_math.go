package math

import (
	"math/big"

	"github.com/solkitdev/virtualcurve-go/virtualcurve/math/pool_fees"
	vc "github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

func ToNumerator(bps *big.Int, feeDenominator *big.Int) (*big.Int, error) {
	return MulDiv(bps, feeDenominator, big.NewInt(vc.MaxBasisPoint), vc.RoundingDown)
}

// GetFeeMode decides which leg of the trade carries the fee. QuoteToken mode
// always charges the quote leg; OutputToken mode always charges the output
// leg, whichever token that is.
func GetFeeMode(collectFeeMode vc.CollectFeeMode, tradeDirection vc.TradeDirection, hasReferral bool) (vc.FeeMode, error) {
	feesOnInput := false
	feesOnBaseToken := false

	switch collectFeeMode {
	case vc.CollectFeeModeOutputToken:
		if tradeDirection == vc.TradeDirectionQuoteToBase {
			feesOnBaseToken = true
		}
	case vc.CollectFeeModeQuoteToken:
		if tradeDirection == vc.TradeDirectionQuoteToBase {
			feesOnInput = true
		}
	default:
		return vc.FeeMode{}, vc.ErrInvalidConfig
	}

	return vc.FeeMode{FeesOnInput: feesOnInput, FeesOnBaseToken: feesOnBaseToken, HasReferral: hasReferral}, nil
}

// GetTotalFeeNumeratorFromAmount evaluates the base fee schedule at
// currentPoint and layers the volatility surcharge on top.
func GetTotalFeeNumeratorFromAmount(poolFees vc.PoolFeesConfig, volatilityTracker vc.VolatilityTracker, currentPoint, activationPoint *big.Int) (*big.Int, error) {
	baseFeeNumerator, err := pool_fees.GetBaseFeeNumerator(
		new(big.Int).SetUint64(poolFees.BaseFee.CliffFeeNumerator),
		poolFees.BaseFee.NumberOfPeriod,
		new(big.Int).SetUint64(poolFees.BaseFee.PeriodFrequency),
		new(big.Int).SetUint64(poolFees.BaseFee.ReductionFactor),
		vc.FeeSchedulerMode(poolFees.BaseFee.FeeSchedulerMode),
		currentPoint,
		activationPoint,
	)
	if err != nil {
		return nil, err
	}
	return GetTotalFeeNumerator(baseFeeNumerator, poolFees.DynamicFee, volatilityTracker), nil
}

func GetTotalFeeNumerator(baseFeeNumerator *big.Int, dynamicFee vc.DynamicFeeConfig, volatilityTracker vc.VolatilityTracker) *big.Int {
	variableFeeNumerator := pool_fees.GetVariableFeeNumerator(dynamicFee, volatilityTracker)
	total := new(big.Int).Add(variableFeeNumerator, baseFeeNumerator)
	maxFee := big.NewInt(vc.MaxFeeNumerator)
	if total.Cmp(maxFee) > 0 {
		return maxFee
	}
	return total
}

// GetFeeOnAmount levies the trading fee on amount and splits it between the
// pool, the protocol, and an optional referrer. Every rounding favors the
// pool over the trader: the gross fee is ceiled, the splits are floored.
func GetFeeOnAmount(tradeFeeNumerator, amount *big.Int, poolFees vc.PoolFeesConfig, hasReferral bool) (vc.FeeOnAmountResult, error) {
	amountAfterFee, tradingFee, err := GetExcludedFeeAmount(tradeFeeNumerator, amount)
	if err != nil {
		return vc.FeeOnAmountResult{}, err
	}
	protocolFee, err := MulDiv(tradingFee, big.NewInt(int64(poolFees.ProtocolFeePercent)), big.NewInt(100), vc.RoundingDown)
	if err != nil {
		return vc.FeeOnAmountResult{}, err
	}
	updatedTradingFee, err := Sub(tradingFee, protocolFee)
	if err != nil {
		return vc.FeeOnAmountResult{}, err
	}
	referralFee := big.NewInt(0)
	if hasReferral {
		referralFee, err = MulDiv(protocolFee, big.NewInt(int64(poolFees.ReferralFeePercent)), big.NewInt(100), vc.RoundingDown)
		if err != nil {
			return vc.FeeOnAmountResult{}, err
		}
	}
	updatedProtocolFee, err := Sub(protocolFee, referralFee)
	if err != nil {
		return vc.FeeOnAmountResult{}, err
	}
	return vc.FeeOnAmountResult{
		Amount:      amountAfterFee,
		ProtocolFee: updatedProtocolFee,
		ReferralFee: referralFee,
		TradingFee:  updatedTradingFee,
	}, nil
}

// GetExcludedFeeAmount strips the trading fee from a fee-inclusive amount.
func GetExcludedFeeAmount(tradeFeeNumerator, includedFeeAmount *big.Int) (*big.Int, *big.Int, error) {
	tradingFee, err := MulDiv(includedFeeAmount, tradeFeeNumerator, big.NewInt(vc.FeeDenominator), vc.RoundingUp)
	if err != nil {
		return nil, nil, err
	}
	excluded, err := Sub(includedFeeAmount, tradingFee)
	if err != nil {
		return nil, nil, err
	}
	return excluded, tradingFee, nil
}
