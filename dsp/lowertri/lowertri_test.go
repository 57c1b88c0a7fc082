package lowertri

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestIndicesScanOrder(t *testing.T) {
	idx, err := Indices(4)
	if err != nil {
		t.Fatal(err)
	}

	// Column-major scan of the lower triangle of a 4x4 matrix:
	// (1,0) (2,0) (3,0) (2,1) (3,1) (3,2) in flat row-major form.
	want := []int{4, 8, 12, 9, 13, 14}
	if len(idx) != len(want) {
		t.Fatalf("len=%d, want %d", len(idx), len(want))
	}

	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("idx[%d]=%d, want %d", i, idx[i], want[i])
		}
	}
}

func TestIndicesDeterministic(t *testing.T) {
	a, err := Indices(7)
	if err != nil {
		t.Fatal(err)
	}

	b, err := Indices(7)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index set not reproducible at %d", i)
		}
	}
}

func TestIndicesInvalidDim(t *testing.T) {
	if _, err := Indices(0); !errors.Is(err, ErrInvalidDim) {
		t.Fatalf("got %v, want ErrInvalidDim", err)
	}
}

func TestVectorizeOrder(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	vec, err := Vectorize(m)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{4, 7, 8}
	for i := range want {
		if vec[i] != want[i] {
			t.Fatalf("vec[%d]=%v, want %v", i, vec[i], want[i])
		}
	}
}

func TestVectorizeNotSquare(t *testing.T) {
	m := mat.NewDense(2, 3, nil)
	if _, err := Vectorize(m); !errors.Is(err, ErrNotSquare) {
		t.Fatalf("got %v, want ErrNotSquare", err)
	}
}

func TestRoundTrip(t *testing.T) {
	const c = 5

	src := mat.NewSymDense(c, nil)
	for i := 0; i < c; i++ {
		src.SetSym(i, i, 1)
		for j := 0; j < i; j++ {
			src.SetSym(i, j, float64(i)*0.1-float64(j)*0.3)
		}
	}

	vec, err := Vectorize(src)
	if err != nil {
		t.Fatal(err)
	}

	if len(vec) != PairCount(c) {
		t.Fatalf("len=%d, want %d", len(vec), PairCount(c))
	}

	back, err := Inflate(vec, c)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < c; i++ {
		for j := 0; j < c; j++ {
			if math.Abs(back.At(i, j)-src.At(i, j)) > 0 {
				t.Fatalf("(%d,%d): got %v, want %v", i, j, back.At(i, j), src.At(i, j))
			}
		}
	}
}

func TestVectorizeStack(t *testing.T) {
	a := mat.NewSymDense(3, nil)
	b := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		a.SetSym(i, i, 1)
		b.SetSym(i, i, 1)
	}
	a.SetSym(1, 0, 0.5)
	a.SetSym(2, 0, -0.25)
	a.SetSym(2, 1, 0.125)
	b.SetSym(1, 0, -1)
	b.SetSym(2, 0, 2)
	b.SetSym(2, 1, -3)

	out, idx, err := VectorizeStack([]*mat.SymDense{a, b})
	if err != nil {
		t.Fatal(err)
	}

	if len(idx) != 3 {
		t.Fatalf("index count=%d, want 3", len(idx))
	}

	r, c := out.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("dims %dx%d, want 2x3", r, c)
	}

	wantA := []float64{0.5, -0.25, 0.125}
	wantB := []float64{-1, 2, -3}
	for p := 0; p < 3; p++ {
		if out.At(0, p) != wantA[p] {
			t.Fatalf("row 0 entry %d: got %v, want %v", p, out.At(0, p), wantA[p])
		}
		if out.At(1, p) != wantB[p] {
			t.Fatalf("row 1 entry %d: got %v, want %v", p, out.At(1, p), wantB[p])
		}
	}
}

func TestVectorizeStackShapeMismatch(t *testing.T) {
	a := mat.NewSymDense(3, nil)
	b := mat.NewSymDense(4, nil)

	if _, _, err := VectorizeStack([]*mat.SymDense{a, b}); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
}

func TestVectorizeStackEmpty(t *testing.T) {
	out, idx, err := VectorizeStack(nil)
	if err != nil || out != nil || idx != nil {
		t.Fatalf("empty stack: got %v %v %v", out, idx, err)
	}
}

func TestVectorizeStackSingleChannel(t *testing.T) {
	a := mat.NewSymDense(1, []float64{1})

	out, idx, err := VectorizeStack([]*mat.SymDense{a})
	if err != nil {
		t.Fatal(err)
	}

	if out != nil {
		t.Fatal("expected nil matrix for dimension 1")
	}

	if len(idx) != 0 {
		t.Fatalf("index count=%d, want 0", len(idx))
	}
}

func TestInflateLengthMismatch(t *testing.T) {
	if _, err := Inflate([]float64{1, 2}, 4); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("got %v, want ErrLengthMismatch", err)
	}
}
