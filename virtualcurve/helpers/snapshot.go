package helpers

import (
	"fmt"
	"math/big"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/tidwall/gjson"

	"github.com/solkitdev/virtualcurve-go/virtualcurve/math"
	"github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

// Snapshot JSON carries u128 values as decimal strings so they survive JSON
// number parsing untouched.

func u128FromResult(v gjson.Result) (bin.Uint128, error) {
	if !v.Exists() {
		return bin.Uint128{}, nil
	}
	out, ok := new(big.Int).SetString(v.String(), 10)
	if !ok {
		return bin.Uint128{}, fmt.Errorf("invalid u128 value %q", v.String())
	}
	u, err := math.BigToU128(out)
	if err != nil {
		return bin.Uint128{}, fmt.Errorf("invalid u128 value %q: %w", v.String(), err)
	}
	return u, nil
}

func pubkeyFromResult(v gjson.Result) (solanago.PublicKey, error) {
	if !v.Exists() || v.String() == "" {
		return solanago.PublicKey{}, nil
	}
	return solanago.PublicKeyFromBase58(v.String())
}

// ParsePoolSnapshot decodes a pool snapshot from JSON.
func ParsePoolSnapshot(data []byte) (*shared.VirtualPool, error) {
	root := gjson.ParseBytes(data)

	baseMint, err := pubkeyFromResult(root.Get("baseMint"))
	if err != nil {
		return nil, fmt.Errorf("baseMint: %w", err)
	}
	quoteMint, err := pubkeyFromResult(root.Get("quoteMint"))
	if err != nil {
		return nil, fmt.Errorf("quoteMint: %w", err)
	}
	sqrtPrice, err := u128FromResult(root.Get("sqrtPrice"))
	if err != nil {
		return nil, err
	}
	binStepU128, err := u128FromResult(root.Get("poolFees.dynamicFee.binStepU128"))
	if err != nil {
		return nil, err
	}
	sqrtPriceReference, err := u128FromResult(root.Get("volatilityTracker.sqrtPriceReference"))
	if err != nil {
		return nil, err
	}
	volatilityAccumulator, err := u128FromResult(root.Get("volatilityTracker.volatilityAccumulator"))
	if err != nil {
		return nil, err
	}
	volatilityReference, err := u128FromResult(root.Get("volatilityTracker.volatilityReference"))
	if err != nil {
		return nil, err
	}

	pool := &shared.VirtualPool{
		BaseMint:        baseMint,
		QuoteMint:       quoteMint,
		SqrtPrice:       sqrtPrice,
		ActivationPoint: root.Get("activationPoint").Uint(),
		PoolFees: shared.PoolFeesConfig{
			BaseFee: shared.BaseFeeConfig{
				CliffFeeNumerator: root.Get("poolFees.baseFee.cliffFeeNumerator").Uint(),
				NumberOfPeriod:    uint16(root.Get("poolFees.baseFee.numberOfPeriod").Uint()),
				PeriodFrequency:   root.Get("poolFees.baseFee.periodFrequency").Uint(),
				ReductionFactor:   root.Get("poolFees.baseFee.reductionFactor").Uint(),
				FeeSchedulerMode:  uint8(root.Get("poolFees.baseFee.feeSchedulerMode").Uint()),
			},
			DynamicFee: shared.DynamicFeeConfig{
				Initialized:              uint8(root.Get("poolFees.dynamicFee.initialized").Uint()),
				BinStep:                  uint16(root.Get("poolFees.dynamicFee.binStep").Uint()),
				BinStepU128:              binStepU128,
				FilterPeriod:             uint16(root.Get("poolFees.dynamicFee.filterPeriod").Uint()),
				DecayPeriod:              uint16(root.Get("poolFees.dynamicFee.decayPeriod").Uint()),
				ReductionFactor:          uint16(root.Get("poolFees.dynamicFee.reductionFactor").Uint()),
				MaxVolatilityAccumulator: uint32(root.Get("poolFees.dynamicFee.maxVolatilityAccumulator").Uint()),
				VariableFeeControl:       uint32(root.Get("poolFees.dynamicFee.variableFeeControl").Uint()),
			},
			ProtocolFeePercent: uint8(root.Get("poolFees.protocolFeePercent").Uint()),
			ReferralFeePercent: uint8(root.Get("poolFees.referralFeePercent").Uint()),
		},
		VolatilityTracker: shared.VolatilityTracker{
			LastUpdateTimestamp:   root.Get("volatilityTracker.lastUpdateTimestamp").Uint(),
			SqrtPriceReference:    sqrtPriceReference,
			VolatilityAccumulator: volatilityAccumulator,
			VolatilityReference:   volatilityReference,
		},
	}
	return pool, nil
}

// ParseConfigSnapshot decodes a curve configuration snapshot from JSON.
func ParseConfigSnapshot(data []byte) (*shared.PoolConfig, error) {
	root := gjson.ParseBytes(data)

	points := root.Get("curve").Array()
	if len(points) > shared.MaxCurvePoint {
		return nil, shared.ErrInvalidConfig
	}
	curve := make([]shared.LiquidityDistributionConfig, 0, len(points))
	for _, p := range points {
		sqrtPrice, err := u128FromResult(p.Get("sqrtPrice"))
		if err != nil {
			return nil, err
		}
		liquidity, err := u128FromResult(p.Get("liquidity"))
		if err != nil {
			return nil, err
		}
		curve = append(curve, shared.LiquidityDistributionConfig{SqrtPrice: sqrtPrice, Liquidity: liquidity})
	}

	return &shared.PoolConfig{
		CollectFeeMode: uint8(root.Get("collectFeeMode").Uint()),
		ActivationType: uint8(root.Get("activationType").Uint()),
		Curve:          curve,
	}, nil
}
