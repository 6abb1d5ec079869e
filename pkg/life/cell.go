package life

import "image/color"

// State is the liveness of a cell.
type State uint8

const (
	Dead State = iota
	Live
)

func (s State) String() string {
	if s == Live {
		return "live"
	}
	return "dead"
}

// DefaultLiveColor is the color every cell starts with.
var DefaultLiveColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Position is the center of a cell in grid units.
type Position struct {
	X, Y float32
}

// Cell holds the two-phase state of one grid position. Between generations
// next always equals current; they only differ after prepareUpdate and before
// commit.
type Cell struct {
	current       State
	next          State
	liveNeighbors uint8
	neighbors     []int32

	x, y  int
	color color.RGBA
}

// Alive reports whether the committed state is Live.
func (c *Cell) Alive() bool { return c.current == Live }

// State returns the committed state.
func (c *Cell) State() State { return c.current }

// LiveNeighbors returns the neighbor count cached by the last prepare pass.
func (c *Cell) LiveNeighbors() int { return int(c.liveNeighbors) }

// Neighbors returns the grid indices of the adjacent cells. The slice is
// shared with the grid and must not be modified.
func (c *Cell) Neighbors() []int32 { return c.neighbors }

// Coords returns the cell's grid coordinates.
func (c *Cell) Coords() (int, int) { return c.x, c.y }

// Position returns the cell center in grid units.
func (c *Cell) Position() Position {
	return Position{X: float32(c.x) + 0.5, Y: float32(c.y) + 0.5}
}

// Color returns the render color of the cell.
func (c *Cell) Color() color.RGBA { return c.color }

// NeedsUpdate reports whether a staged state is waiting to be committed.
func (c *Cell) NeedsUpdate() bool { return c.current != c.next }

// prepareUpdate counts live neighbors from the committed states in cells and
// stages the next state. It writes only to c.
func (c *Cell) prepareUpdate(cells []Cell) {
	var n uint8
	for _, idx := range c.neighbors {
		if cells[idx].current == Live {
			n++
		}
	}
	c.liveNeighbors = n
	c.next = rule(c.current, n)
}

// commit promotes the staged state and reports whether it changed.
func (c *Cell) commit() bool {
	if !c.NeedsUpdate() {
		return false
	}
	c.current = c.next
	return true
}

// set forces both states, bypassing the two-phase protocol.
func (c *Cell) set(s State) {
	c.current = s
	c.next = s
}

// rule is B3/S23: a live cell survives with 2 or 3 live neighbors, a dead
// cell is born with exactly 3.
func rule(s State, liveNeighbors uint8) State {
	if liveNeighbors == 3 || (s == Live && liveNeighbors == 2) {
		return Live
	}
	return Dead
}
