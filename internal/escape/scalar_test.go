package escape

import (
	"math"
	"testing"
)

const (
	testMaxIter = 256
	testRadius  = 4.0
)

func TestScalar(t *testing.T) {
	tests := []struct {
		name string
		x, y float32
		want int
	}{
		{"origin never escapes", 0, 0, testMaxIter},
		{"period two", -1, 0, testMaxIter},
		{"cycle through i", 0, 1, testMaxIter},
		{"cusp", 0.25, 0, testMaxIter},
		{"outside radius on first update", 2, 0, 1},
		{"boundary r2 equals threshold", -2, 0, 1},
		{"far outside", 3, 0, 1},
		{"two steps", 1, 0, 2},
		{"imaginary far", 0, 2.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scalar(tt.x, tt.y, testMaxIter, testRadius); got != tt.want {
				t.Errorf("Scalar(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestScalar_ZeroCap(t *testing.T) {
	if got := Scalar(0, 0, 0, testRadius); got != 0 {
		t.Errorf("Scalar with maxIter 0 = %d, want 0", got)
	}
}

func TestScalar_CapVariants(t *testing.T) {
	for _, maxIter := range []int{1, 256, 450} {
		if got := Scalar(0, 0, maxIter, testRadius); got != maxIter {
			t.Errorf("Scalar(origin, %d) = %d, want %d", maxIter, got, maxIter)
		}
	}
}

func TestScalar_NaNEscapes(t *testing.T) {
	nan := float32(math.NaN())
	if got := Scalar(nan, 0, testMaxIter, testRadius); got != 1 {
		t.Errorf("Scalar(NaN) = %d, want 1", got)
	}
}

func TestScalar_Bounded(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 2000; i++ {
		x, y := randomPoint(rng)
		got := Scalar(x, y, testMaxIter, testRadius)
		if got < 0 || got > testMaxIter {
			t.Fatalf("Scalar(%v, %v) = %d, outside [0, %d]", x, y, got, testMaxIter)
		}
	}
}

func TestScalarGroup(t *testing.T) {
	var g PointGroup
	g.Reset(3)
	g.Set(0, 0, 0)
	g.Set(1, 2, 0)
	g.Set(2, 1, 0)

	ScalarGroup(&g, testMaxIter, testRadius)

	want := []int{testMaxIter, 1, 2}
	for lane, w := range want {
		if got := g.Count(lane); got != w {
			t.Errorf("lane %d = %d, want %d", lane, got, w)
		}
	}
	for lane := 3; lane < Lanes; lane++ {
		if got := g.Count(lane); got != 0 {
			t.Errorf("tail lane %d = %d, want untouched 0", lane, got)
		}
	}
}

func BenchmarkScalar(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Scalar(-0.75, 0.1, testMaxIter, testRadius)
	}
}
