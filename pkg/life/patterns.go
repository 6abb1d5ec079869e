package life

import (
	"fmt"
	"sort"
)

// Pattern is a named set of live cells given as offsets from its top-left
// corner.
type Pattern struct {
	Name  string
	Cells [][2]int
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (int, int) {
	w, h := 0, 0
	for _, c := range p.Cells {
		w = max(w, c[0]+1)
		h = max(h, c[1]+1)
	}
	return w, h
}

var patterns = map[string]Pattern{}

// RegisterPattern adds p to the registry, replacing any pattern with the
// same name.
func RegisterPattern(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	patterns[p.Name] = p
}

// LookupPattern returns the registered pattern called name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// PatternNames lists registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlacePattern makes the cells of the named pattern live with its top-left
// corner at (x, y). Nothing is written unless every cell fits.
func (g *Grid) PlacePattern(name string, x, y int) error {
	p, err := LookupPattern(name)
	if err != nil {
		return err
	}
	idx := make([]int, len(p.Cells))
	for i, c := range p.Cells {
		n, err := g.Lookup(x+c[0], y+c[1])
		if err != nil {
			return fmt.Errorf("place %s at (%d,%d): %w", name, x, y, err)
		}
		idx[i] = n
	}
	for _, n := range idx {
		g.setIndex(n, true)
	}
	return nil
}

// PlacePatternCentered places the named pattern in the middle of the grid.
func (g *Grid) PlacePatternCentered(name string) error {
	p, err := LookupPattern(name)
	if err != nil {
		return err
	}
	pw, ph := p.Bounds()
	return g.PlacePattern(name, (g.w-pw)/2, (g.h-ph)/2)
}

func init() {
	RegisterPattern(Pattern{Name: "block", Cells: [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}})
	RegisterPattern(Pattern{Name: "blinker", Cells: [][2]int{{0, 0}, {1, 0}, {2, 0}}})
	RegisterPattern(Pattern{Name: "glider", Cells: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}})
	RegisterPattern(Pattern{Name: "r-pentomino", Cells: [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}})
	RegisterPattern(Pattern{Name: "lwss", Cells: [][2]int{
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	}})
}
