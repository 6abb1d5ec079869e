package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Total returns the number of cells in a grid of this size.
func (s Size) Total() int { return s.W * s.H }

// Sim is the contract the viewer drives. Cells returns one byte per cell in
// row-major order, non-zero meaning live.
type Sim interface {
	Name() string
	Size() Size
	Step() uint64
	Generation() uint64
	Cells() []uint8
}
