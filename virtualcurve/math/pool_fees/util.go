package pool_fees

import (
	"math/big"

	vc "github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

func sub(a, b *big.Int) (*big.Int, error) {
	if b.Cmp(a) > 0 {
		return nil, vc.ErrMathOverflow
	}
	return new(big.Int).Sub(a, b), nil
}

func mulDiv(x, y, denominator *big.Int, rounding vc.Rounding) (*big.Int, error) {
	if denominator.Sign() == 0 {
		return nil, vc.ErrDivisionByZero
	}
	if denominator.Cmp(big.NewInt(1)) == 0 || x.Sign() == 0 || y.Sign() == 0 {
		return new(big.Int).Mul(x, y), nil
	}
	prod := new(big.Int).Mul(x, y)
	if rounding == vc.RoundingUp {
		numerator := new(big.Int).Add(prod, new(big.Int).Sub(denominator, big.NewInt(1)))
		return new(big.Int).Div(numerator, denominator), nil
	}
	return new(big.Int).Div(prod, denominator), nil
}

// pow raises a Q64 fixed-point base to an integer exponent by repeated
// squaring, flooring after every multiply. Exact rational exponentiation is
// kept out of floating point because the result feeds fee-bearing amounts.
func pow(base, exponent *big.Int, scaling bool) (*big.Int, error) {
	one := new(big.Int).Lsh(big.NewInt(1), vc.Resolution)

	if exponent.Sign() == 0 {
		return new(big.Int).Set(one), nil
	}
	if base.Sign() == 0 {
		return big.NewInt(0), nil
	}
	if base.Cmp(one) == 0 {
		return new(big.Int).Set(one), nil
	}
	if exponent.Cmp(big.NewInt(1)) == 0 {
		return new(big.Int).Set(base), nil
	}

	if exponent.BitLen() > 64 {
		return nil, vc.ErrMathOverflow
	}
	exponentU64 := exponent.Uint64()
	result := new(big.Int).Set(one)
	currentBase := new(big.Int).Set(base)

	for exponentU64 > 0 {
		if exponentU64&1 == 1 {
			if scaling {
				res, err := mulDiv(result, currentBase, one, vc.RoundingDown)
				if err != nil {
					return nil, err
				}
				result = res
			} else {
				result = new(big.Int).Mul(result, currentBase)
			}
		}
		exponentU64 >>= 1
		if exponentU64 > 0 {
			if scaling {
				res, err := mulDiv(currentBase, currentBase, one, vc.RoundingDown)
				if err != nil {
					return nil, err
				}
				currentBase = res
			} else {
				currentBase = new(big.Int).Mul(currentBase, currentBase)
			}
		}
	}
	return result, nil
}
