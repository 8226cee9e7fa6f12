package picker

import (
	"os"
	"testing"

	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func TestWrapHorizontal(t *testing.T) {
	tests := []struct {
		index, delta, n int
		want            int
	}{
		{0, 1, 16, 1},
		{15, 1, 16, 0},
		{0, -1, 16, 15},
		{7, -1, 16, 6},
		{3, 0, 16, 3},
		{0, 1, 1, 0},
		{0, 1, 0, 0},
	}

	for _, tt := range tests {
		if got := WrapHorizontal(tt.index, tt.delta, tt.n); got != tt.want {
			t.Errorf("WrapHorizontal(%d, %d, %d) = %d, want %d", tt.index, tt.delta, tt.n, got, tt.want)
		}
	}
}

func TestWrapHorizontal_FullCycle(t *testing.T) {
	for _, n := range []int{1, 2, 16, 256} {
		for start := 0; start < n; start += max(n/7, 1) {
			i := start
			for range n {
				i = WrapHorizontal(i, 1, n)
			}
			if i != start {
				t.Errorf("n=%d: %d steps from %d ended at %d", n, n, start, i)
			}
		}
	}
}

func TestMoveVertical(t *testing.T) {
	tests := []struct {
		name                  string
		index, delta, cols, n int
		want                  int
	}{
		{"down", 2, 1, 6, 16, 8},
		{"up", 8, -1, 6, 16, 2},
		{"top clamps", 2, -1, 6, 16, 2},
		{"bottom clamps", 14, 1, 6, 16, 14},
		{"short last row shifts column", 11, 1, 6, 16, 15},
		{"single column", 3, 1, 1, 16, 4},
		{"zero columns treated as one", 3, 1, 0, 16, 4},
		{"extended short row", 249, 1, 10, 256, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveVertical(tt.index, tt.delta, tt.cols, tt.n); got != tt.want {
				t.Errorf("MoveVertical(%d, %d, %d, %d) = %d, want %d", tt.index, tt.delta, tt.cols, tt.n, got, tt.want)
			}
		})
	}
}

func TestMoveVertical_StaysInRange(t *testing.T) {
	for _, n := range []int{1, 5, 16, 256} {
		for cols := 1; cols <= 20; cols++ {
			for i := range n {
				for _, d := range []int{-1, 1} {
					got := MoveVertical(i, d, cols, n)
					if got < 0 || got >= n {
						t.Fatalf("MoveVertical(%d, %d, %d, %d) = %d out of range", i, d, cols, n, got)
					}
				}
			}
		}
	}
}

func TestColumnsAndPage(t *testing.T) {
	if got := Columns(48, 6); got != 8 {
		t.Errorf("Columns(48, 6) = %d, want 8", got)
	}
	if got := Columns(3, 6); got != 1 {
		t.Errorf("Columns(3, 6) = %d, want 1", got)
	}
	if got := Columns(10, 0); got != 1 {
		t.Errorf("Columns(10, 0) = %d, want 1", got)
	}

	tests := []struct {
		index, cols, rows int
		want              int
	}{
		{0, 8, 4, 0},
		{31, 8, 4, 0},
		{32, 8, 4, 1},
		{255, 10, 3, 8},
		{5, 0, 0, 5},
	}
	for _, tt := range tests {
		if got := Page(tt.index, tt.cols, tt.rows); got != tt.want {
			t.Errorf("Page(%d, %d, %d) = %d, want %d", tt.index, tt.cols, tt.rows, got, tt.want)
		}
	}
}
