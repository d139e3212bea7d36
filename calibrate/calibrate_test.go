package calibrate

import (
	"errors"
	"testing"

	"picointerp/remap"
)

func TestObserved(t *testing.T) {
	testCases := []struct {
		name    string
		samples []int32
		want    remap.Range
		wantErr error
	}{
		{
			name:    "bench readings",
			samples: []int32{1500, 900, 2800, 1200, 2100},
			want:    remap.Range{Low: 900, High: 2800},
		},
		{
			name:    "two samples",
			samples: []int32{10, 5},
			want:    remap.Range{Low: 5, High: 10},
		},
		{
			name:    "empty",
			samples: nil,
			wantErr: ErrNoSamples,
		},
		{
			name:    "flat signal",
			samples: []int32{7, 7, 7},
			wantErr: ErrFlatSignal,
		},
	}

	for _, tc := range testCases {
		got, err := Observed(tc.samples)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("%s: got err=%v, want %v", tc.name, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestTrimmedDiscardsOutliers(t *testing.T) {
	// A steady signal around 900..2800 with one stuck-high spike.
	samples := []int32{900, 1200, 1500, 1800, 2100, 2400, 2800, 4095}

	trimmed, err := Trimmed(samples, 1)
	if err != nil {
		t.Fatalf("Trimmed error: %v", err)
	}
	observed, err := Observed(samples)
	if err != nil {
		t.Fatalf("Observed error: %v", err)
	}

	if trimmed.High >= observed.High {
		t.Errorf("trim kept the spike: high %d vs observed %d", trimmed.High, observed.High)
	}
	if trimmed.Low < observed.Low {
		t.Errorf("trimmed low %d below observed %d", trimmed.Low, observed.Low)
	}
	if trimmed.Span() <= 0 {
		t.Errorf("trimmed range has no span: %+v", trimmed)
	}
}

func TestTrimmedDegenerateFallsBack(t *testing.T) {
	samples := []int32{1000, 1001, 1000, 1001}

	// k=0 collapses mean±k·σ to a point; the observed bounds must come back
	// instead of an unusable range.
	got, err := Trimmed(samples, 0)
	if err != nil {
		t.Fatalf("Trimmed error: %v", err)
	}
	want := remap.Range{Low: 1000, High: 1001}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestTrimmedErrors(t *testing.T) {
	if _, err := Trimmed(nil, 2); !errors.Is(err, ErrNoSamples) {
		t.Errorf("empty input: got err=%v, want ErrNoSamples", err)
	}
	if _, err := Trimmed([]int32{5, 5}, 2); !errors.Is(err, ErrFlatSignal) {
		t.Errorf("flat input: got err=%v, want ErrFlatSignal", err)
	}
}
