package game

// CellState tracks what the player knows about a single square. The three
// states are mutually exclusive; a flagged square must be unflagged before
// it can be revealed.
type CellState int8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "!"
	}
}

// Cell is one square of the minefield. Mine and Neighbors are fixed once the
// board is built; only State changes during play.
type Cell struct {
	Mine      bool
	State     CellState
	Neighbors int // mines among the up-to-8 adjacent squares
}
