package shared

import "math/big"

// Published constants of the on-chain virtual-curve program. The engine must
// use these exact values to reproduce on-chain results integer-for-integer.
const (
	MaxCurvePoint = 20

	Offset     = 64
	Resolution = 64

	FeeDenominator = 1_000_000_000
	MaxBasisPoint  = 10_000

	U16Max = 65_535
	U24Max = 16_777_215

	MinFeeNumerator = 2_500_000
	MaxFeeNumerator = 990_000_000

	BinStepBpsDefault = 1
)

var (
	OneQ64 = new(big.Int).Lsh(big.NewInt(1), Resolution)

	U64Max  = new(big.Int).SetUint64(^uint64(0))
	U128Max = bigIntFromString("340282366920938463463374607431768211455")

	MinSqrtPrice = bigIntFromString("4295048016")
	MaxSqrtPrice = bigIntFromString("79226673521066979257578248091")

	DynamicFeeScalingFactor  = bigIntFromString("100000000000")
	DynamicFeeRoundingOffset = bigIntFromString("99999999999")

	BinStepBpsU128Default = bigIntFromString("1844674407370955")
)

func bigIntFromString(v string) *big.Int {
	out, ok := new(big.Int).SetString(v, 10)
	if !ok {
		panic("invalid big integer literal")
	}
	return out
}
