// Package remap converts raw samples from a calibrated input range into a
// target output range using integer-only arithmetic.
//
// Two paths are provided: MapExact performs the true (truncating) integer
// division, and MapApproximate models the RP2040 SIO interpolator's blend
// mode, which replaces the division by a fixed-point multiply with an 8-bit
// fraction over 256. The approximate path is systematically low by up to
// ~0.4% because the fraction is floor(255*f)/256; Corrected adds back 1/256
// of the result to recover most of that.
package remap

import "errors"

// ErrZeroSpan is returned when the calibrated range has zero width, which
// would make the mapping a division by zero. A zero-width range is a caller
// configuration defect and is never masked.
var ErrZeroSpan = errors.New("calibrated range has zero span")

// Range holds inclusive integer bounds. High > Low for meaningful use;
// only High == Low is rejected (as ErrZeroSpan, when used as the calibrated
// range of a mapping).
type Range struct {
	Low  int32
	High int32
}

// Span returns High - Low.
func (r Range) Span() int32 {
	return r.High - r.Low
}

// Approximation is the result of the fixed-point path. Approx is what the
// interpolator computes; Corrected is Approx + Approx>>8.
type Approximation struct {
	Approx    int32
	Corrected int32
}

// MapExact maps sample from the calibrated range onto the target range:
//
//	target.Low + (target.High-target.Low)*(sample-calibrated.Low)/(calibrated.High-calibrated.Low)
//
// evaluated left to right with truncating division, so results match the
// reference integer arithmetic bit for bit. Samples outside the calibrated
// range extrapolate linearly; nothing is clamped.
//
// The intermediate product span*offset must fit in an int32; choosing ranges
// narrow enough for that is the caller's responsibility.
func MapExact(sample int32, calibrated, target Range) (int32, error) {
	calSpan := calibrated.Span()
	if calSpan == 0 {
		return 0, ErrZeroSpan
	}
	return target.Low + target.Span()*(sample-calibrated.Low)/calSpan, nil
}

// MapApproximate maps sample the way the hardware interpolator does: the
// position within the calibrated range becomes an 8-bit fraction
// a = 255*(sample-calibrated.Low)/calSpan, and the target span is scaled by
// a/256 with a right shift instead of a division.
//
// The fraction register keeps only the low 8 bits, so a is reduced mod 256
// by truncation rather than clamped; samples far outside the calibrated
// range alias. This matches the hardware and is deliberate.
func MapApproximate(sample int32, calibrated, target Range) (Approximation, error) {
	calSpan := calibrated.Span()
	if calSpan == 0 {
		return Approximation{}, ErrZeroSpan
	}

	// Low 8 bits only, as the ACCUM1 alpha field in blend mode.
	a := int32(uint8(255 * (sample - calibrated.Low) / calSpan))

	approx := target.Low + (target.Span()*a)>>8
	return Approximation{
		Approx:    approx,
		Corrected: approx + approx>>8,
	}, nil
}
