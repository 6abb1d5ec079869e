package life

import (
	"slices"
	"testing"
)

func TestNeighborCountsByPosition(t *testing.T) {
	for _, dims := range [][2]int{{3, 3}, {5, 4}, {7, 9}} {
		w, h := dims[0], dims[1]
		nbs := buildNeighbors(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				onX := x == 0 || x == w-1
				onY := y == 0 || y == h-1
				want := 8
				switch {
				case onX && onY:
					want = 3
				case onX || onY:
					want = 5
				}
				if got := len(nbs[y*w+x]); got != want {
					t.Fatalf("%dx%d cell (%d,%d) has %d neighbors, expected %d", w, h, x, y, got, want)
				}
			}
		}
	}
}

func TestNeighborOrderClockwiseFromLeft(t *testing.T) {
	nbs := buildNeighbors(5, 5)

	// Interior cell (2,2): left, upper-left, upper, upper-right, right,
	// lower-right, lower, lower-left.
	want := []int32{11, 6, 7, 8, 13, 18, 17, 16}
	if got := nbs[12]; !slices.Equal(got, want) {
		t.Fatalf("interior neighbors = %v, expected %v", got, want)
	}

	// Top-left corner keeps the same relative order with out-of-bounds
	// positions skipped.
	want = []int32{1, 6, 5}
	if got := nbs[0]; !slices.Equal(got, want) {
		t.Fatalf("corner neighbors = %v, expected %v", got, want)
	}
}

func TestNeighborsNeverWrap(t *testing.T) {
	w, h := 6, 4
	nbs := buildNeighbors(w, h)
	for i, list := range nbs {
		x, y := i%w, i/w
		for _, n := range list {
			nx, ny := int(n)%w, int(n)/w
			if abs(nx-x) > 1 || abs(ny-y) > 1 || int(n) == i {
				t.Fatalf("cell (%d,%d) lists non-adjacent neighbor (%d,%d)", x, y, nx, ny)
			}
		}
	}
}

func TestNeighborsDegenerateGrids(t *testing.T) {
	if nbs := buildNeighbors(1, 1); len(nbs) != 1 || len(nbs[0]) != 0 {
		t.Fatalf("1x1 grid should have a single isolated cell, got %v", nbs)
	}
	nbs := buildNeighbors(1, 3)
	got := []int{len(nbs[0]), len(nbs[1]), len(nbs[2])}
	if !slices.Equal(got, []int{1, 2, 1}) {
		t.Fatalf("1x3 neighbor counts = %v, expected [1 2 1]", got)
	}
}

func TestNeighborTotalMatchesTopology(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {4, 1}, {3, 3}, {10, 7}} {
		w, h := dims[0], dims[1]
		sum := 0
		for _, list := range buildNeighbors(w, h) {
			sum += len(list)
		}
		if n := neighborTotal(w, h); n != sum {
			t.Fatalf("%dx%d neighborTotal=%d, topology has %d links", w, h, n, sum)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
