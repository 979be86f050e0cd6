package math

import (
	"math/big"

	"github.com/shopspring/decimal"
	vc "github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

type curvePoint struct {
	SqrtPrice *big.Int
	Liquidity *big.Int
}

func curveFromConfig(config *vc.PoolConfig) []curvePoint {
	curve := make([]curvePoint, 0, len(config.Curve))
	for _, c := range config.Curve {
		curve = append(curve, curvePoint{SqrtPrice: U128ToBig(c.SqrtPrice), Liquidity: U128ToBig(c.Liquidity)})
	}
	return curve
}

// CalculateBaseToQuoteFromAmountIn sells base token down the curve, consuming
// segments from the current price toward the curve floor. The liquidity
// active below a breakpoint is stored with the breakpoint above it. Whatever
// input survives the configured breakpoints is finished against the lowest
// segment's liquidity, which has no further price floor, so this direction
// always consumes the full input.
//
// Per-segment outputs accumulate in a decimal running sum and collapse to an
// integer once, flooring, after the walk.
func CalculateBaseToQuoteFromAmountIn(config *vc.PoolConfig, currentSqrtPrice, amountIn *big.Int) (vc.SwapAmount, error) {
	curve := curveFromConfig(config)
	if len(curve) == 0 {
		return vc.SwapAmount{}, vc.ErrInvalidConfig
	}
	totalOutput := decimal.Zero
	current := new(big.Int).Set(currentSqrtPrice)
	amountLeft := new(big.Int).Set(amountIn)

	for i := len(curve) - 2; i >= 0; i-- {
		if curve[i].SqrtPrice.Sign() == 0 || curve[i].Liquidity.Sign() == 0 {
			continue
		}
		if curve[i].SqrtPrice.Cmp(current) >= 0 {
			continue
		}
		maxAmountIn, err := GetDeltaAmountBaseUnsigned(curve[i].SqrtPrice, current, curve[i+1].Liquidity, vc.RoundingUp)
		if err != nil {
			return vc.SwapAmount{}, err
		}
		if amountLeft.Cmp(maxAmountIn) < 0 {
			nextSqrtPrice, err := GetNextSqrtPriceFromInput(current, curve[i+1].Liquidity, amountLeft, true)
			if err != nil {
				return vc.SwapAmount{}, err
			}
			outputAmount, err := GetDeltaAmountQuoteUnsigned(nextSqrtPrice, current, curve[i+1].Liquidity, vc.RoundingDown)
			if err != nil {
				return vc.SwapAmount{}, err
			}
			totalOutput = totalOutput.Add(decimal.NewFromBigInt(outputAmount, 0))
			current = nextSqrtPrice
			amountLeft = big.NewInt(0)
			break
		}
		nextSqrtPrice := curve[i].SqrtPrice
		outputAmount, err := GetDeltaAmountQuoteUnsigned(nextSqrtPrice, current, curve[i+1].Liquidity, vc.RoundingDown)
		if err != nil {
			return vc.SwapAmount{}, err
		}
		totalOutput = totalOutput.Add(decimal.NewFromBigInt(outputAmount, 0))
		current = nextSqrtPrice
		amountLeft.Sub(amountLeft, maxAmountIn)
	}

	if amountLeft.Sign() != 0 {
		nextSqrtPrice, err := GetNextSqrtPriceFromInput(current, curve[0].Liquidity, amountLeft, true)
		if err != nil {
			return vc.SwapAmount{}, err
		}
		outputAmount, err := GetDeltaAmountQuoteUnsigned(nextSqrtPrice, current, curve[0].Liquidity, vc.RoundingDown)
		if err != nil {
			return vc.SwapAmount{}, err
		}
		totalOutput = totalOutput.Add(decimal.NewFromBigInt(outputAmount, 0))
		current = nextSqrtPrice
		amountLeft = big.NewInt(0)
	}

	return vc.SwapAmount{OutputAmount: totalOutput.BigInt(), NextSqrtPrice: current, AmountLeft: amountLeft}, nil
}

// CalculateQuoteToBaseFromAmountIn buys base token up the curve. The curve has
// a hard upper price bound in this direction: input left over after the last
// segment is reported in AmountLeft for the caller to reject.
func CalculateQuoteToBaseFromAmountIn(config *vc.PoolConfig, currentSqrtPrice, amountIn *big.Int) (vc.SwapAmount, error) {
	curve := curveFromConfig(config)
	if len(curve) == 0 {
		return vc.SwapAmount{}, vc.ErrInvalidConfig
	}
	if amountIn.Sign() == 0 {
		return vc.SwapAmount{OutputAmount: big.NewInt(0), NextSqrtPrice: new(big.Int).Set(currentSqrtPrice), AmountLeft: big.NewInt(0)}, nil
	}
	totalOutput := decimal.Zero
	current := new(big.Int).Set(currentSqrtPrice)
	amountLeft := new(big.Int).Set(amountIn)

	for i := 0; i < len(curve); i++ {
		if curve[i].SqrtPrice.Sign() == 0 || curve[i].Liquidity.Sign() == 0 {
			continue
		}
		if curve[i].SqrtPrice.Cmp(current) <= 0 {
			continue
		}
		maxAmountIn, err := GetDeltaAmountQuoteUnsigned(current, curve[i].SqrtPrice, curve[i].Liquidity, vc.RoundingUp)
		if err != nil {
			return vc.SwapAmount{}, err
		}
		if amountLeft.Cmp(maxAmountIn) < 0 {
			nextSqrtPrice, err := GetNextSqrtPriceFromInput(current, curve[i].Liquidity, amountLeft, false)
			if err != nil {
				return vc.SwapAmount{}, err
			}
			outputAmount, err := GetDeltaAmountBaseUnsigned(current, nextSqrtPrice, curve[i].Liquidity, vc.RoundingDown)
			if err != nil {
				return vc.SwapAmount{}, err
			}
			totalOutput = totalOutput.Add(decimal.NewFromBigInt(outputAmount, 0))
			current = nextSqrtPrice
			amountLeft = big.NewInt(0)
			break
		}
		nextSqrtPrice := curve[i].SqrtPrice
		outputAmount, err := GetDeltaAmountBaseUnsigned(current, nextSqrtPrice, curve[i].Liquidity, vc.RoundingDown)
		if err != nil {
			return vc.SwapAmount{}, err
		}
		totalOutput = totalOutput.Add(decimal.NewFromBigInt(outputAmount, 0))
		current = nextSqrtPrice
		amountLeft.Sub(amountLeft, maxAmountIn)
	}

	return vc.SwapAmount{OutputAmount: totalOutput.BigInt(), NextSqrtPrice: current, AmountLeft: amountLeft}, nil
}
