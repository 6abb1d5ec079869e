package life

// mooreOffsets lists the neighborhood clockwise starting from the left
// neighbor. Rows grow downwards, so "upper" is y-1.
var mooreOffsets = [8][2]int{
	{-1, 0},  // left
	{-1, -1}, // upper-left
	{0, -1},  // upper
	{1, -1},  // upper-right
	{1, 0},   // right
	{1, 1},   // lower-right
	{0, 1},   // lower
	{-1, 1},  // lower-left
}

// buildNeighbors returns, for every cell of a w*h row-major grid, the indices
// of its in-bounds Moore neighbors. Edges do not wrap: corners get 3
// neighbors, other edge cells 5 and interior cells 8. All per-cell slices are
// carved from one backing array.
func buildNeighbors(w, h int) [][]int32 {
	total := w * h
	flat := make([]int32, 0, neighborTotal(w, h))
	out := make([][]int32, total)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			start := len(flat)
			for _, off := range mooreOffsets {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				flat = append(flat, int32(ny*w+nx))
			}
			out[y*w+x] = flat[start:len(flat):len(flat)]
		}
	}
	return out
}

// neighborTotal is the exact number of neighbor links in a w*h grid.
func neighborTotal(w, h int) int {
	// Horizontal, vertical and both diagonal adjacencies, counted from each side.
	links := h*(w-1) + w*(h-1) + 2*(w-1)*(h-1)
	if links < 0 {
		return 0
	}
	return 2 * links
}
