// Package virtualcurve quotes swaps against a virtual-curve bonding pool
// without touching the chain. Given read-only pool and config snapshots plus
// a point in time, it reproduces the on-chain program's pricing, fee
// scheduling, and dynamic-fee arithmetic integer-for-integer, so the returned
// estimate matches what an executed swap would pay.
package virtualcurve

import (
	"math/big"

	"github.com/solkitdev/virtualcurve-go/virtualcurve/math"
	"github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

// GetSwapResult runs one quotation: the trading fee is levied on the input or
// on the output leg depending on feeMode, never both, and the remaining
// amount is walked through the curve.
func GetSwapResult(virtualPool *shared.VirtualPool, config *shared.PoolConfig, amountIn *big.Int, feeMode shared.FeeMode, tradeDirection shared.TradeDirection, currentPoint *big.Int) (shared.SwapResult, error) {
	var actualProtocolFee = big.NewInt(0)
	var actualTradingFee = big.NewInt(0)
	var actualReferralFee = big.NewInt(0)

	tradeFeeNumerator, err := math.GetTotalFeeNumeratorFromAmount(virtualPool.PoolFees, virtualPool.VolatilityTracker, currentPoint, new(big.Int).SetUint64(virtualPool.ActivationPoint))
	if err != nil {
		return shared.SwapResult{}, err
	}

	actualAmountIn := amountIn
	if feeMode.FeesOnInput {
		feeResult, err := math.GetFeeOnAmount(tradeFeeNumerator, amountIn, virtualPool.PoolFees, feeMode.HasReferral)
		if err != nil {
			return shared.SwapResult{}, err
		}
		actualProtocolFee = feeResult.ProtocolFee
		actualTradingFee = feeResult.TradingFee
		actualReferralFee = feeResult.ReferralFee
		actualAmountIn = feeResult.Amount
	}

	currentSqrtPrice := math.U128ToBig(virtualPool.SqrtPrice)
	var swapAmount shared.SwapAmount
	if tradeDirection == shared.TradeDirectionBaseToQuote {
		swapAmount, err = math.CalculateBaseToQuoteFromAmountIn(config, currentSqrtPrice, actualAmountIn)
	} else {
		swapAmount, err = math.CalculateQuoteToBaseFromAmountIn(config, currentSqrtPrice, actualAmountIn)
	}
	if err != nil {
		return shared.SwapResult{}, err
	}

	if swapAmount.AmountLeft.Sign() != 0 {
		return shared.SwapResult{}, shared.ErrInsufficientLiquidity
	}

	actualAmountOut := swapAmount.OutputAmount
	if !feeMode.FeesOnInput {
		feeResult, err := math.GetFeeOnAmount(tradeFeeNumerator, swapAmount.OutputAmount, virtualPool.PoolFees, feeMode.HasReferral)
		if err != nil {
			return shared.SwapResult{}, err
		}
		actualTradingFee = feeResult.TradingFee
		actualProtocolFee = feeResult.ProtocolFee
		actualReferralFee = feeResult.ReferralFee
		actualAmountOut = feeResult.Amount
	}

	// Token amounts at rest are u64 on the wire; anything wider is rejected
	// rather than silently wrapped.
	if actualAmountIn.Cmp(shared.U64Max) > 0 || actualAmountOut.Cmp(shared.U64Max) > 0 {
		return shared.SwapResult{}, shared.ErrMathOverflow
	}

	return shared.SwapResult{
		ActualInputAmount: actualAmountIn,
		OutputAmount:      actualAmountOut,
		NextSqrtPrice:     swapAmount.NextSqrtPrice,
		TradingFee:        actualTradingFee,
		ProtocolFee:       actualProtocolFee,
		ReferralFee:       actualReferralFee,
	}, nil
}

// SwapQuote is the public entry point. It derives the trade direction and fee
// mode, quotes the swap at currentPoint, and applies the caller's slippage
// tolerance to produce a minimum acceptable output.
func SwapQuote(virtualPool *shared.VirtualPool, config *shared.PoolConfig, swapBaseForQuote bool, amountIn *big.Int, slippageBps uint16, hasReferral bool, currentPoint *big.Int) (shared.SwapQuoteResult, error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return shared.SwapQuoteResult{}, shared.ErrInvalidState
	}

	tradeDirection := shared.TradeDirectionQuoteToBase
	if swapBaseForQuote {
		tradeDirection = shared.TradeDirectionBaseToQuote
	}
	feeMode, err := math.GetFeeMode(shared.CollectFeeMode(config.CollectFeeMode), tradeDirection, hasReferral)
	if err != nil {
		return shared.SwapQuoteResult{}, err
	}
	result, err := GetSwapResult(virtualPool, config, amountIn, feeMode, tradeDirection, currentPoint)
	if err != nil {
		return shared.SwapQuoteResult{}, err
	}

	minimumAmountOut := result.OutputAmount
	if slippageBps > 0 {
		slippageFactor := big.NewInt(int64(shared.MaxBasisPoint) - int64(slippageBps))
		minimumAmountOut = new(big.Int).Div(new(big.Int).Mul(result.OutputAmount, slippageFactor), big.NewInt(shared.MaxBasisPoint))
	}

	return shared.SwapQuoteResult{SwapResult: result, MinimumAmountOut: minimumAmountOut}, nil
}
