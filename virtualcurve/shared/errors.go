package shared

import "errors"

// Every failure the engine raises is one of these kinds. They signal malformed
// input data or a curve unable to satisfy the request, never a transient
// condition, so callers should not retry.
var (
	ErrDivisionByZero        = errors.New("division by zero")
	ErrInvalidState          = errors.New("sqrt price and liquidity must be greater than 0")
	ErrInvalidConfig         = errors.New("invalid pool configuration")
	ErrInvalidRange          = errors.New("invalid sqrt price range")
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
	ErrMathOverflow          = errors.New("math overflow")
)
