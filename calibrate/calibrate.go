// Package calibrate derives a calibrated input range from observed raw
// samples, replacing the manual procedure of reading bounds off a bench
// setup and hard-coding them.
package calibrate

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"picointerp/remap"
)

var (
	ErrNoSamples = errors.New("no samples to calibrate from")

	// ErrFlatSignal is returned when every sample has the same value, so
	// no usable range exists.
	ErrFlatSignal = errors.New("samples have zero span")
)

// Observed returns the exact bounds of the samples.
func Observed(samples []int32) (remap.Range, error) {
	if len(samples) == 0 {
		return remap.Range{}, ErrNoSamples
	}

	low, high := samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < low {
			low = s
		}
		if s > high {
			high = s
		}
	}
	if low == high {
		return remap.Range{}, ErrFlatSignal
	}
	return remap.Range{Low: low, High: high}, nil
}

// Trimmed returns the range mean ± k standard deviations, intersected with
// the observed bounds. It discards outlier spikes (a stuck reading, a
// transient on the sense line) that would otherwise stretch the calibrated
// range and flatten the mapping for every normal sample.
func Trimmed(samples []int32, k float64) (remap.Range, error) {
	observed, err := Observed(samples)
	if err != nil {
		return remap.Range{}, err
	}

	xs := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(s)
	}
	mean, std := stat.MeanStdDev(xs, nil)

	low := int32(mean - k*std)
	high := int32(mean + k*std)
	if low < observed.Low {
		low = observed.Low
	}
	if high > observed.High {
		high = observed.High
	}
	if low >= high {
		// Degenerate trim (k too small for the spread); fall back to the
		// observed bounds rather than returning an unusable range.
		return observed, nil
	}
	return remap.Range{Low: low, High: high}, nil
}
