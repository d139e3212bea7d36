// Package sampler consumes a stream of raw readings (one decimal value per
// line, as the target firmware prints them) and remaps each one through
// both the exact and the fixed-point paths.
package sampler

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"picointerp/remap"
)

// Reading is one remapped sample.
type Reading struct {
	Raw       int32
	Exact     int32
	Approx    int32
	Corrected int32
}

// Handler receives each remapped reading.
type Handler func(Reading)

// Sampler remaps a line-oriented sample stream. Create one with New; the
// zero value is not usable.
type Sampler struct {
	calibrated remap.Range
	target     remap.Range
	handler    Handler

	// Skipped counts lines that did not parse as a decimal sample.
	Skipped int
}

// New validates the ranges up front so a zero-width calibration surfaces
// here rather than on the first sample.
func New(calibrated, target remap.Range, handler Handler) (*Sampler, error) {
	if _, err := remap.MapExact(calibrated.Low, calibrated, target); err != nil {
		return nil, err
	}
	return &Sampler{
		calibrated: calibrated,
		target:     target,
		handler:    handler,
	}, nil
}

// Run reads the stream until EOF or a read error, invoking the handler for
// every well-formed sample. Lines that are blank or not decimal integers
// are counted in Skipped and otherwise ignored, since a freshly opened
// serial port often starts mid-line.
func (s *Sampler) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		raw, err := strconv.ParseInt(line, 10, 32)
		if err != nil {
			s.Skipped++
			continue
		}

		s.handler(s.remap(int32(raw)))
	}
	return scanner.Err()
}

// Collect reads up to n samples from the stream and returns them raw,
// without remapping. Used to gather a calibration window before streaming.
func Collect(r io.Reader, n int) ([]int32, error) {
	samples := make([]int32, 0, n)
	scanner := bufio.NewScanner(r)
	for len(samples) < n && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		raw, err := strconv.ParseInt(line, 10, 32)
		if err != nil {
			continue
		}
		samples = append(samples, int32(raw))
	}
	return samples, scanner.Err()
}

func (s *Sampler) remap(raw int32) Reading {
	// Ranges were validated in New; the zero-span error cannot recur.
	exact, _ := remap.MapExact(raw, s.calibrated, s.target)
	ap, _ := remap.MapApproximate(raw, s.calibrated, s.target)
	return Reading{
		Raw:       raw,
		Exact:     exact,
		Approx:    ap.Approx,
		Corrected: ap.Corrected,
	}
}
