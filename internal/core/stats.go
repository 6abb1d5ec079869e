package core

// Stat is one labelled value shown on the HUD.
type Stat struct {
	Label string
	Value string
}

// StatsProvider exposes the HUD lines for the current frame.
type StatsProvider interface {
	Stats() []Stat
}
