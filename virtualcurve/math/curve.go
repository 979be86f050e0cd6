package math

import (
	"math/big"

	vc "github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

// GetInitialLiquidityFromDeltaQuote derives the seed liquidity that a quote
// deposit provides over [sqrtMinPrice, sqrtPrice].
func GetInitialLiquidityFromDeltaQuote(quoteAmount, sqrtMinPrice, sqrtPrice *big.Int) (*big.Int, error) {
	priceDelta, err := Sub(sqrtPrice, sqrtMinPrice)
	if err != nil {
		return nil, err
	}
	return ShlDiv(quoteAmount, priceDelta, vc.Resolution*2, vc.RoundingDown)
}

// GetInitialLiquidityFromDeltaBase derives the seed liquidity that a base
// deposit provides over [sqrtPrice, sqrtMaxPrice].
func GetInitialLiquidityFromDeltaBase(baseAmount, sqrtMaxPrice, sqrtPrice *big.Int) (*big.Int, error) {
	priceDelta, err := Sub(sqrtMaxPrice, sqrtPrice)
	if err != nil {
		return nil, err
	}
	prod := Mul(Mul(baseAmount, sqrtPrice), sqrtMaxPrice)
	return Div(prod, priceDelta)
}

// GetInitializeAmounts returns the base and quote deposits required to seed
// liquidity at sqrtPrice within [sqrtMinPrice, sqrtMaxPrice]. Rounded up so
// the pool is never under-funded.
func GetInitializeAmounts(sqrtMinPrice, sqrtMaxPrice, sqrtPrice, liquidity *big.Int) (*big.Int, *big.Int, error) {
	amountBase, err := GetDeltaAmountBaseUnsigned(sqrtPrice, sqrtMaxPrice, liquidity, vc.RoundingUp)
	if err != nil {
		return nil, nil, err
	}
	amountQuote, err := GetDeltaAmountQuoteUnsigned(sqrtMinPrice, sqrtPrice, liquidity, vc.RoundingUp)
	if err != nil {
		return nil, nil, err
	}
	return amountBase, amountQuote, nil
}

// GetDeltaAmountBaseUnsigned computes the base-token amount moved across
// [lowerSqrtPrice, upperSqrtPrice]: liquidity * (upper - lower) / (lower * upper).
func GetDeltaAmountBaseUnsigned(lowerSqrtPrice, upperSqrtPrice, liquidity *big.Int, round vc.Rounding) (*big.Int, error) {
	if liquidity.Sign() == 0 {
		return big.NewInt(0), nil
	}
	numerator2, err := Sub(upperSqrtPrice, lowerSqrtPrice)
	if err != nil {
		return nil, err
	}
	denominator := Mul(lowerSqrtPrice, upperSqrtPrice)
	if denominator.Sign() == 0 {
		return nil, vc.ErrInvalidRange
	}
	return MulDiv(liquidity, numerator2, denominator, round)
}

// GetDeltaAmountQuoteUnsigned computes the quote-token amount moved across
// [lowerSqrtPrice, upperSqrtPrice]: liquidity * (upper - lower) / 2^128.
func GetDeltaAmountQuoteUnsigned(lowerSqrtPrice, upperSqrtPrice, liquidity *big.Int, round vc.Rounding) (*big.Int, error) {
	if liquidity.Sign() == 0 {
		return big.NewInt(0), nil
	}
	deltaSqrtPrice, err := Sub(upperSqrtPrice, lowerSqrtPrice)
	if err != nil {
		return nil, err
	}
	prod := Mul(liquidity, deltaSqrtPrice)
	if round == vc.RoundingUp {
		denominator := new(big.Int).Lsh(big.NewInt(1), vc.Resolution*2)
		numerator := new(big.Int).Add(prod, new(big.Int).Sub(denominator, big.NewInt(1)))
		return Div(numerator, denominator)
	}
	return new(big.Int).Rsh(prod, vc.Resolution*2), nil
}

// GetNextSqrtPriceFromInput returns the sqrt price after consuming amountIn.
// Base input rounds up so the pool never under-charges; quote input rounds
// down so the price never overshoots.
func GetNextSqrtPriceFromInput(sqrtPrice, liquidity, amountIn *big.Int, baseForQuote bool) (*big.Int, error) {
	if sqrtPrice.Sign() == 0 || liquidity.Sign() == 0 {
		return nil, vc.ErrInvalidState
	}
	if baseForQuote {
		return getNextSqrtPriceFromBaseAmountInRoundingUp(sqrtPrice, liquidity, amountIn)
	}
	return getNextSqrtPriceFromQuoteAmountInRoundingDown(sqrtPrice, liquidity, amountIn)
}

// next = ceil(sqrtPrice * liquidity / (liquidity + amount * sqrtPrice))
func getNextSqrtPriceFromBaseAmountInRoundingUp(sqrtPrice, liquidity, amount *big.Int) (*big.Int, error) {
	if amount.Sign() == 0 {
		return new(big.Int).Set(sqrtPrice), nil
	}
	product := Mul(amount, sqrtPrice)
	denominator := new(big.Int).Add(liquidity, product)
	return MulDiv(liquidity, sqrtPrice, denominator, vc.RoundingUp)
}

// next = sqrtPrice + amount<<128 / liquidity, flooring.
func getNextSqrtPriceFromQuoteAmountInRoundingDown(sqrtPrice, liquidity, amount *big.Int) (*big.Int, error) {
	quotient, err := ShlDiv(amount, liquidity, vc.Resolution*2, vc.RoundingDown)
	if err != nil {
		return nil, err
	}
	return Add(sqrtPrice, quotient), nil
}
