package sampler

import (
	"errors"
	"strings"
	"testing"

	"picointerp/remap"
)

var (
	calibrated = remap.Range{Low: 900, High: 2800}
	target     = remap.Range{Low: 1000, High: 3000}
)

func TestRunRemapsStream(t *testing.T) {
	var readings []Reading
	s, err := New(calibrated, target, func(r Reading) {
		readings = append(readings, r)
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	stream := "1500\n900\n2800\n"
	if err := s.Run(strings.NewReader(stream)); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	want := []Reading{
		{Raw: 1500, Exact: 1631, Approx: 1625, Corrected: 1631},
		{Raw: 900, Exact: 1000, Approx: 1000, Corrected: 1003},
		{Raw: 2800, Exact: 3000, Approx: 2992, Corrected: 3003},
	}
	if len(readings) != len(want) {
		t.Fatalf("got %d readings, want %d", len(readings), len(want))
	}
	for i, w := range want {
		if readings[i] != w {
			t.Errorf("reading %d: got %+v, want %+v", i, readings[i], w)
		}
	}
}

func TestRunSkipsGarbage(t *testing.T) {
	var count int
	s, err := New(calibrated, target, func(Reading) { count++ })
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// A just-opened port typically delivers a torn first line plus the
	// firmware's banner text.
	stream := "00\x00garbage\nADC Linear Interpolation\n1500\n\n2000\n"
	if err := s.Run(strings.NewReader(stream)); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if count != 2 {
		t.Errorf("handled %d samples, want 2", count)
	}
	if s.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", s.Skipped)
	}
}

func TestNewRejectsZeroSpan(t *testing.T) {
	_, err := New(remap.Range{Low: 5, High: 5}, target, func(Reading) {})
	if !errors.Is(err, remap.ErrZeroSpan) {
		t.Errorf("got err=%v, want ErrZeroSpan", err)
	}
}

func TestCollect(t *testing.T) {
	stream := "900\nnoise\n1500\n2800\n2100\n"
	samples, err := Collect(strings.NewReader(stream), 3)
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}

	want := []int32{900, 1500, 2800}
	if len(samples) != len(want) {
		t.Fatalf("got %d samples, want %d", len(samples), len(want))
	}
	for i, w := range want {
		if samples[i] != w {
			t.Errorf("sample %d: got %d, want %d", i, samples[i], w)
		}
	}
}
