package pool_fees

import (
	"math/big"

	vc "github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

func GetFeeSchedulerMaxBaseFeeNumerator(cliffFeeNumerator *big.Int) *big.Int {
	return new(big.Int).Set(cliffFeeNumerator)
}

func GetFeeSchedulerMinBaseFeeNumerator(cliffFeeNumerator *big.Int, numberOfPeriod uint16, reductionFactor *big.Int, feeSchedulerMode vc.FeeSchedulerMode) (*big.Int, error) {
	return GetBaseFeeNumeratorByPeriod(cliffFeeNumerator, numberOfPeriod, big.NewInt(int64(numberOfPeriod)), reductionFactor, feeSchedulerMode)
}

// GetBaseFeeNumerator resolves the elapsed period from currentPoint and
// activationPoint and evaluates the schedule. A quote taken before activation
// prices at the fully decayed fee, not the cliff fee.
func GetBaseFeeNumerator(cliffFeeNumerator *big.Int, numberOfPeriod uint16, periodFrequency *big.Int, reductionFactor *big.Int, feeSchedulerMode vc.FeeSchedulerMode, currentPoint, activationPoint *big.Int) (*big.Int, error) {
	if periodFrequency.Sign() == 0 {
		return new(big.Int).Set(cliffFeeNumerator), nil
	}
	if currentPoint.Cmp(activationPoint) < 0 {
		return GetBaseFeeNumeratorByPeriod(cliffFeeNumerator, numberOfPeriod, big.NewInt(int64(numberOfPeriod)), reductionFactor, feeSchedulerMode)
	}
	period := new(big.Int).Sub(currentPoint, activationPoint)
	period = period.Div(period, periodFrequency)
	return GetBaseFeeNumeratorByPeriod(cliffFeeNumerator, numberOfPeriod, period, reductionFactor, feeSchedulerMode)
}

func GetBaseFeeNumeratorByPeriod(cliffFeeNumerator *big.Int, numberOfPeriod uint16, period *big.Int, reductionFactor *big.Int, feeSchedulerMode vc.FeeSchedulerMode) (*big.Int, error) {
	periodValue := new(big.Int).Set(period)
	if periodValue.Cmp(big.NewInt(int64(numberOfPeriod))) > 0 {
		periodValue = big.NewInt(int64(numberOfPeriod))
	}
	periodNumber := int(periodValue.Uint64())

	switch feeSchedulerMode {
	case vc.FeeSchedulerModeLinear:
		return GetFeeNumeratorOnLinearFeeScheduler(cliffFeeNumerator, reductionFactor, periodNumber)
	case vc.FeeSchedulerModeExponential:
		return GetFeeNumeratorOnExponentialFeeScheduler(cliffFeeNumerator, reductionFactor, periodNumber)
	default:
		return nil, vc.ErrInvalidConfig
	}
}

// GetFeeNumeratorOnLinearFeeScheduler computes cliff - period*reductionFactor.
// Valid configurations never cross zero; the clamp keeps a malformed snapshot
// from producing a negative fee, and validation.ValidatePoolFees rejects such
// configs up front.
func GetFeeNumeratorOnLinearFeeScheduler(cliffFeeNumerator, reductionFactor *big.Int, period int) (*big.Int, error) {
	reduction := new(big.Int).Mul(big.NewInt(int64(period)), reductionFactor)
	if reduction.Cmp(cliffFeeNumerator) > 0 {
		return big.NewInt(0), nil
	}
	return new(big.Int).Sub(cliffFeeNumerator, reduction), nil
}

// GetFeeNumeratorOnExponentialFeeScheduler computes
// cliff * (1 - reductionFactor/10000)^period, flooring. Period 1 short-cuts
// to a single mulDiv so the Q64 conversion cannot lose precision.
func GetFeeNumeratorOnExponentialFeeScheduler(cliffFeeNumerator, reductionFactor *big.Int, period int) (*big.Int, error) {
	if period == 0 {
		return new(big.Int).Set(cliffFeeNumerator), nil
	}
	basisPointMax := big.NewInt(vc.MaxBasisPoint)
	if period == 1 {
		remaining, err := sub(basisPointMax, reductionFactor)
		if err != nil {
			return nil, vc.ErrInvalidConfig
		}
		return mulDiv(cliffFeeNumerator, remaining, basisPointMax, vc.RoundingDown)
	}
	oneQ64 := new(big.Int).Lsh(big.NewInt(1), vc.Resolution)
	bps := new(big.Int).Lsh(reductionFactor, vc.Resolution)
	bps = bps.Div(bps, basisPointMax)
	base, err := sub(oneQ64, bps)
	if err != nil {
		return nil, vc.ErrInvalidConfig
	}
	result, err := pow(base, big.NewInt(int64(period)), true)
	if err != nil {
		return nil, err
	}
	prod := new(big.Int).Mul(cliffFeeNumerator, result)
	return new(big.Int).Div(prod, oneQ64), nil
}
