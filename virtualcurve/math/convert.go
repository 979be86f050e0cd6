package math

import (
	"encoding/binary"
	"math/big"

	bin "github.com/gagliardetto/binary"

	vc "github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

func U128ToBig(v bin.Uint128) *big.Int {
	return v.BigInt()
}

// BigToU128 rejects values outside the u128 domain instead of wrapping them.
func BigToU128(v *big.Int) (bin.Uint128, error) {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return bin.Uint128{}, vc.ErrMathOverflow
	}
	u := bin.Uint128{
		Endianness: binary.LittleEndian,
	}
	bytes := v.Bytes()
	if len(bytes) < 16 {
		pad := make([]byte, 16-len(bytes))
		bytes = append(pad, bytes...)
	}
	u.Hi = new(big.Int).SetBytes(bytes[:8]).Uint64()
	u.Lo = new(big.Int).SetBytes(bytes[8:]).Uint64()
	return u, nil
}
