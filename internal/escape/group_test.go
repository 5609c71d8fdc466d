package escape

import (
	"math/rand/v2"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0xface))
}

// randomPoint draws from the default viewport, widened a little so both
// escaping and bounded orbits are common.
func randomPoint(rng *rand.Rand) (float32, float32) {
	x := -2.6 + rng.Float32()*4.2
	y := -1.6 + rng.Float32()*3.2
	return x, y
}

func TestPointGroup_Reset(t *testing.T) {
	var g PointGroup
	g.Reset(Lanes)
	for lane := 0; lane < Lanes; lane++ {
		g.Set(lane, 1, 1)
	}
	g.Iter[0] = 42

	g.Reset(2)
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
	for lane := 0; lane < Lanes; lane++ {
		if g.X[lane] != 0 || g.Y[lane] != 0 {
			t.Errorf("lane %d = (%v, %v), want neutral (0, 0)", lane, g.X[lane], g.Y[lane])
		}
		if g.Iter[lane] != 0 {
			t.Errorf("lane %d count = %d, want 0", lane, g.Iter[lane])
		}
	}
}

func TestPointGroup_ResetPanics(t *testing.T) {
	for _, n := range []int{-1, Lanes + 1} {
		t.Run("", func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Reset(%d) did not panic", n)
				}
			}()
			var g PointGroup
			g.Reset(n)
		})
	}
}

func TestPointGroup_SetTailLanePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set on a tail lane did not panic")
		}
	}()
	var g PointGroup
	g.Reset(3)
	g.Set(3, 0, 0)
}

func TestGroupsPerRow(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 0},
		{1, 1},
		{8, 1},
		{9, 2},
		{800, 100},
		{803, 101},
	}

	for _, tt := range tests {
		if got := GroupsPerRow(tt.width); got != tt.want {
			t.Errorf("GroupsPerRow(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestLiveLanes(t *testing.T) {
	tests := []struct {
		width, px int
		want      int
	}{
		{800, 0, 8},
		{800, 792, 8},
		{803, 800, 3},
		{5, 0, 5},
		{8, 8, 0},
		{8, 16, 0},
	}

	for _, tt := range tests {
		if got := LiveLanes(tt.width, tt.px); got != tt.want {
			t.Errorf("LiveLanes(%d, %d) = %d, want %d", tt.width, tt.px, got, tt.want)
		}
	}
}
