package math

import (
	"math/big"

	vc "github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

// MulDiv computes x*y/denominator with the full 256-bit-wide product held
// exactly before dividing, then floors or ceils per rounding. Results are
// bit-identical to exact rational arithmetic followed by floor/ceiling.
func MulDiv(x, y, denominator *big.Int, rounding vc.Rounding) (*big.Int, error) {
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

// MulShr computes (x*y)>>offset, flooring.
func MulShr(x, y *big.Int, offset uint) *big.Int {
	if offset == 0 || x.Sign() == 0 || y.Sign() == 0 {
		return new(big.Int).Mul(x, y)
	}
	prod := new(big.Int).Mul(x, y)
	return new(big.Int).Rsh(prod, offset)
}

// ShlDiv computes (x<<offset)/y with the requested rounding.
func ShlDiv(x, y *big.Int, offset uint, rounding vc.Rounding) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, vc.ErrDivisionByZero
	}
	shifted := new(big.Int).Lsh(x, offset)
	if rounding == vc.RoundingUp {
		numerator := new(big.Int).Add(shifted, new(big.Int).Sub(y, big.NewInt(1)))
		return new(big.Int).Div(numerator, y), nil
	}
	return new(big.Int).Div(shifted, y), nil
}

func Sqrt(value *big.Int) *big.Int {
	if value.Sign() == 0 {
		return big.NewInt(0)
	}
	if value.Cmp(big.NewInt(1)) == 0 {
		return big.NewInt(1)
	}
	x := new(big.Int).Set(value)
	y := new(big.Int).Add(value, big.NewInt(1))
	y = y.Div(y, big.NewInt(2))

	for y.Cmp(x) < 0 {
		x = new(big.Int).Set(y)
		y = new(big.Int).Add(x, new(big.Int).Div(value, x))
		y = y.Div(y, big.NewInt(2))
	}
	return x
}
