package math

import (
	"math/big"

	vc "github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

// Sub fails instead of wrapping below zero; every quantity in the engine is
// unsigned.
func Sub(a, b *big.Int) (*big.Int, error) {
	if b.Cmp(a) > 0 {
		return nil, vc.ErrMathOverflow
	}
	return new(big.Int).Sub(a, b), nil
}

func Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

func Div(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, vc.ErrDivisionByZero
	}
	return new(big.Int).Div(a, b), nil
}

func Mod(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, vc.ErrDivisionByZero
	}
	return new(big.Int).Mod(a, b), nil
}

func Shl(a *big.Int, b uint) *big.Int {
	return new(big.Int).Lsh(a, b)
}

func Shr(a *big.Int, b uint) *big.Int {
	return new(big.Int).Rsh(a, b)
}
