package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1, 8, 1, 9)
	if len(s) != 9 {
		t.Fatalf("len=%d, want 9", len(s))
	}

	if s[0] != 0 {
		t.Fatalf("s[0]=%v, want 0", s[0])
	}

	if math.Abs(s[2]-1) > 1e-12 {
		t.Fatalf("s[2]=%v, want 1", s[2])
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(7, 1, 64)
	b := DeterministicNoise(7, 1, 64)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not reproducible at %d", i)
		}
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(5, 2)
	for i, v := range imp {
		want := 0.0
		if i == 2 {
			want = 1
		}
		if v != want {
			t.Fatalf("imp[%d]=%v, want %v", i, v, want)
		}
	}
}

func TestSeriesFromChannels(t *testing.T) {
	s := SeriesFromChannels([]float64{1, 2, 3}, []float64{4, 5, 6})

	r, c := s.Dims()
	if r != 3 || c != 2 {
		t.Fatalf("dims %dx%d, want 3x2", r, c)
	}

	if s.At(1, 0) != 2 || s.At(1, 1) != 5 {
		t.Fatalf("unexpected row 1: %v %v", s.At(1, 0), s.At(1, 1))
	}
}

func TestScaledPair(t *testing.T) {
	s := ScaledPair([]float64{1, -2, 3}, 2)

	for i := 0; i < 3; i++ {
		if s.At(i, 1) != 2*s.At(i, 0) {
			t.Fatalf("row %d not scaled", i)
		}
	}
}
