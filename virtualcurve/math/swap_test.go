package math

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	vc "github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

func swapConfig(t *testing.T, points ...[2]*big.Int) *vc.PoolConfig {
	t.Helper()
	curve := make([]vc.LiquidityDistributionConfig, 0, len(points))
	for _, p := range points {
		sqrtPrice, err := BigToU128(p[0])
		require.NoError(t, err)
		liquidity, err := BigToU128(p[1])
		require.NoError(t, err)
		curve = append(curve, vc.LiquidityDistributionConfig{
			SqrtPrice: sqrtPrice,
			Liquidity: liquidity,
		})
	}
	return &vc.PoolConfig{Curve: curve}
}

func TestSwapEmptyCurve(t *testing.T) {
	config := &vc.PoolConfig{}
	_, err := CalculateBaseToQuoteFromAmountIn(config, q(1), big.NewInt(1))
	require.ErrorIs(t, err, vc.ErrInvalidConfig)
	_, err = CalculateQuoteToBaseFromAmountIn(config, q(1), big.NewInt(1))
	require.ErrorIs(t, err, vc.ErrInvalidConfig)
}

func TestSwapZeroAmountIn(t *testing.T) {
	config := swapConfig(t, [2]*big.Int{q(2), pow2(127)}, [2]*big.Int{q(4), pow2(127)})

	out, err := CalculateBaseToQuoteFromAmountIn(config, q(3), big.NewInt(0))
	require.NoError(t, err)
	require.Zero(t, out.OutputAmount.Sign())
	require.Equal(t, q(3), out.NextSqrtPrice)
	require.Zero(t, out.AmountLeft.Sign())

	out, err = CalculateQuoteToBaseFromAmountIn(config, q(3), big.NewInt(0))
	require.NoError(t, err)
	require.Zero(t, out.OutputAmount.Sign())
	require.Equal(t, q(3), out.NextSqrtPrice)
	require.Zero(t, out.AmountLeft.Sign())
}

func TestBaseToQuoteLandsOnBreakpoint(t *testing.T) {
	// Selling exactly the segment capacity must stop on the breakpoint below.
	// L = 2^127 over [2, 3] yields 2^63 quote exactly.
	liquidity := pow2(127)
	config := swapConfig(t, [2]*big.Int{q(2), liquidity}, [2]*big.Int{q(4), liquidity})

	amountIn, err := GetDeltaAmountBaseUnsigned(q(2), q(3), liquidity, vc.RoundingUp)
	require.NoError(t, err)

	out, err := CalculateBaseToQuoteFromAmountIn(config, q(3), amountIn)
	require.NoError(t, err)
	require.Equal(t, q(2), out.NextSqrtPrice)
	require.Equal(t, pow2(63), out.OutputAmount)
	require.Zero(t, out.AmountLeft.Sign())
}

func TestBaseToQuoteBelowLowestBreakpoint(t *testing.T) {
	// Input surviving every configured breakpoint finishes against the lowest
	// segment's liquidity. No input is ever left behind in this direction.
	liquidity := pow2(127)
	config := swapConfig(t, [2]*big.Int{q(2), liquidity}, [2]*big.Int{q(4), liquidity})

	segmentCapacity, err := GetDeltaAmountBaseUnsigned(q(2), q(3), liquidity, vc.RoundingUp)
	require.NoError(t, err)
	amountIn := new(big.Int).Add(segmentCapacity, big.NewInt(1000))

	out, err := CalculateBaseToQuoteFromAmountIn(config, q(3), amountIn)
	require.NoError(t, err)
	require.Zero(t, out.AmountLeft.Sign())
	require.Equal(t, -1, out.NextSqrtPrice.Cmp(q(2)))
	require.Equal(t, 1, out.OutputAmount.Cmp(pow2(63)))
}

func TestBaseToQuoteSkipsZeroLiquidityStub(t *testing.T) {
	liquidity := pow2(127)
	config := swapConfig(t,
		[2]*big.Int{big.NewInt(0), big.NewInt(0)},
		[2]*big.Int{q(2), liquidity},
		[2]*big.Int{q(4), liquidity},
	)

	amountIn, err := GetDeltaAmountBaseUnsigned(q(2), q(3), liquidity, vc.RoundingUp)
	require.NoError(t, err)

	out, err := CalculateBaseToQuoteFromAmountIn(config, q(3), amountIn)
	require.NoError(t, err)
	require.Equal(t, q(2), out.NextSqrtPrice)
	require.Equal(t, pow2(63), out.OutputAmount)
	require.Zero(t, out.AmountLeft.Sign())
}

func TestQuoteToBasePartialFill(t *testing.T) {
	// amountIn = 2^63 against L = 2^127 moves the price from 2 to exactly 3 in
	// Q64 and yields floor(2^62/3) base.
	config := swapConfig(t, [2]*big.Int{q(4), pow2(127)})

	out, err := CalculateQuoteToBaseFromAmountIn(config, q(2), pow2(63))
	require.NoError(t, err)
	require.Equal(t, q(3), out.NextSqrtPrice)
	require.Equal(t, new(big.Int).Div(pow2(62), big.NewInt(3)), out.OutputAmount)
	require.Zero(t, out.AmountLeft.Sign())
}

func TestQuoteToBaseExhaustsCurve(t *testing.T) {
	// L = 2^64 over [2, 4] holds exactly 2 quote units. The surplus is reported
	// in AmountLeft, not swallowed.
	config := swapConfig(t, [2]*big.Int{q(4), pow2(64)})

	out, err := CalculateQuoteToBaseFromAmountIn(config, q(2), big.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, q(4), out.NextSqrtPrice)
	require.Equal(t, int64(8), out.AmountLeft.Int64())
}

func TestQuoteToBaseSkipsZeroLiquidityStub(t *testing.T) {
	config := swapConfig(t,
		[2]*big.Int{q(3), big.NewInt(0)},
		[2]*big.Int{q(4), pow2(127)},
	)

	out, err := CalculateQuoteToBaseFromAmountIn(config, q(2), pow2(63))
	require.NoError(t, err)
	require.Equal(t, q(3), out.NextSqrtPrice)
	require.Equal(t, new(big.Int).Div(pow2(62), big.NewInt(3)), out.OutputAmount)
	require.Zero(t, out.AmountLeft.Sign())
}

func TestQuoteToBaseCrossesBreakpoint(t *testing.T) {
	// Filling the first segment exactly plus a quarter of the second must cross
	// into the second segment's liquidity and stop strictly between its bounds.
	liquidity := pow2(127)
	config := swapConfig(t, [2]*big.Int{q(3), liquidity}, [2]*big.Int{q(4), liquidity})

	firstCapacity, err := GetDeltaAmountQuoteUnsigned(q(2), q(3), liquidity, vc.RoundingUp)
	require.NoError(t, err)
	amountIn := new(big.Int).Add(firstCapacity, pow2(62))

	out, err := CalculateQuoteToBaseFromAmountIn(config, q(2), amountIn)
	require.NoError(t, err)
	require.Equal(t, 1, out.NextSqrtPrice.Cmp(q(3)))
	require.Equal(t, -1, out.NextSqrtPrice.Cmp(q(4)))
	require.Zero(t, out.AmountLeft.Sign())
}
