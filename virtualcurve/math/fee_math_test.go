package math

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	vc "github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

func TestToNumerator(t *testing.T) {
	out, err := ToNumerator(big.NewInt(25), big.NewInt(vc.FeeDenominator))
	require.NoError(t, err)
	require.Equal(t, int64(2_500_000), out.Int64())
}

func TestGetFeeMode(t *testing.T) {
	cases := []struct {
		name            string
		collectFeeMode  vc.CollectFeeMode
		tradeDirection  vc.TradeDirection
		hasReferral     bool
		feesOnInput     bool
		feesOnBaseToken bool
	}{
		{"quote token, base to quote", vc.CollectFeeModeQuoteToken, vc.TradeDirectionBaseToQuote, false, false, false},
		{"quote token, quote to base", vc.CollectFeeModeQuoteToken, vc.TradeDirectionQuoteToBase, true, true, false},
		{"output token, base to quote", vc.CollectFeeModeOutputToken, vc.TradeDirectionBaseToQuote, false, false, false},
		{"output token, quote to base", vc.CollectFeeModeOutputToken, vc.TradeDirectionQuoteToBase, true, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			feeMode, err := GetFeeMode(c.collectFeeMode, c.tradeDirection, c.hasReferral)
			require.NoError(t, err)
			require.Equal(t, c.feesOnInput, feeMode.FeesOnInput)
			require.Equal(t, c.feesOnBaseToken, feeMode.FeesOnBaseToken)
			require.Equal(t, c.hasReferral, feeMode.HasReferral)
		})
	}
}

func TestGetFeeModeInvalidCollectMode(t *testing.T) {
	_, err := GetFeeMode(vc.CollectFeeMode(2), vc.TradeDirectionQuoteToBase, false)
	require.ErrorIs(t, err, vc.ErrInvalidConfig)
}

func TestGetExcludedFeeAmount(t *testing.T) {
	// 1% of 1_000_000 is exact.
	excluded, tradingFee, err := GetExcludedFeeAmount(big.NewInt(10_000_000), big.NewInt(1_000_000))
	require.NoError(t, err)
	require.Equal(t, int64(10_000), tradingFee.Int64())
	require.Equal(t, int64(990_000), excluded.Int64())

	// The gross fee ceils: a single unit at the smallest numerator still pays.
	excluded, tradingFee, err = GetExcludedFeeAmount(big.NewInt(1), big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, int64(1), tradingFee.Int64())
	require.Zero(t, excluded.Sign())
}

func TestGetFeeOnAmountSplit(t *testing.T) {
	poolFees := vc.PoolFeesConfig{ProtocolFeePercent: 20, ReferralFeePercent: 20}

	out, err := GetFeeOnAmount(big.NewInt(10_000_000), big.NewInt(1_000_000), poolFees, true)
	require.NoError(t, err)
	require.Equal(t, int64(990_000), out.Amount.Int64())
	require.Equal(t, int64(8_000), out.TradingFee.Int64())
	require.Equal(t, int64(1_600), out.ProtocolFee.Int64())
	require.Equal(t, int64(400), out.ReferralFee.Int64())
}

func TestGetFeeOnAmountNoReferral(t *testing.T) {
	poolFees := vc.PoolFeesConfig{ProtocolFeePercent: 20, ReferralFeePercent: 20}

	out, err := GetFeeOnAmount(big.NewInt(10_000_000), big.NewInt(1_000_000), poolFees, false)
	require.NoError(t, err)
	require.Equal(t, int64(8_000), out.TradingFee.Int64())
	require.Equal(t, int64(2_000), out.ProtocolFee.Int64())
	require.Zero(t, out.ReferralFee.Sign())
}

func TestGetFeeOnAmountConservation(t *testing.T) {
	poolFees := vc.PoolFeesConfig{ProtocolFeePercent: 33, ReferralFeePercent: 17}
	for _, amount := range []int64{1, 999, 1_000_000, 123_456_789} {
		out, err := GetFeeOnAmount(big.NewInt(77_000_000), big.NewInt(amount), poolFees, true)
		require.NoError(t, err)

		total := new(big.Int).Add(out.Amount, out.TradingFee)
		total.Add(total, out.ProtocolFee)
		total.Add(total, out.ReferralFee)
		require.Equal(t, amount, total.Int64(), "fee split must conserve the input amount")
	}
}

func TestGetTotalFeeNumeratorCapped(t *testing.T) {
	dynamicFee := vc.DynamicFeeConfig{
		Initialized:        1,
		BinStep:            1,
		VariableFeeControl: 100_000,
	}
	volatility, err := BigToU128(big.NewInt(100_000))
	require.NoError(t, err)
	tracker := vc.VolatilityTracker{VolatilityAccumulator: volatility}

	// (100_000 * 1)^2 * 100_000 / 1e11 = 10_000 variable fee on top of a base
	// fee already near the cap.
	total := GetTotalFeeNumerator(big.NewInt(989_995_000), dynamicFee, tracker)
	require.Equal(t, int64(vc.MaxFeeNumerator), total.Int64())

	total = GetTotalFeeNumerator(big.NewInt(100_000_000), dynamicFee, tracker)
	require.Equal(t, int64(100_010_000), total.Int64())
}

func TestGetTotalFeeNumeratorFromAmountUsesSchedule(t *testing.T) {
	poolFees := vc.PoolFeesConfig{
		BaseFee: vc.BaseFeeConfig{
			CliffFeeNumerator: 100_000_000,
			NumberOfPeriod:    10,
			PeriodFrequency:   10,
			ReductionFactor:   1_000_000,
			FeeSchedulerMode:  uint8(vc.FeeSchedulerModeLinear),
		},
	}

	// Two elapsed periods: 100_000_000 - 2*1_000_000.
	total, err := GetTotalFeeNumeratorFromAmount(poolFees, vc.VolatilityTracker{}, big.NewInt(1025), big.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, int64(98_000_000), total.Int64())
}
