package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Board owns the minefield. The mine layout and neighbor counts never change
// after NewBoard returns; play state lives in each cell's State field.
type Board struct {
	GameParams
	cells []Cell // row-major, y*Width+x
}

func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		GameParams: params,
		cells:      make([]Cell, params.Width*params.Height),
	}
	b.placeMines(r)
	b.countNeighbors()
	return b, nil
}

// placeMines samples squares uniformly, rejecting ones already mined, until
// exactly MineCount squares are mined. Rejection sampling degrades as mine
// density approaches 1; Validate keeps at least one square free and the
// presets keep density low.
func (b *Board) placeMines(r *rand.Rand) {
	placed := 0
	for placed < b.MineCount {
		x, y := r.IntN(b.Width), r.IntN(b.Height)
		if c := b.at(x, y); !c.Mine {
			c.Mine = true
			placed++
		}
	}
}

func (b *Board) countNeighbors() {
	for y := range b.Height {
		for x := range b.Width {
			if b.at(x, y).Mine {
				continue
			}
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if b.InBounds(x+dx, y+dy) && b.at(x+dx, y+dy).Mine {
						n++
					}
				}
			}
			b.at(x, y).Neighbors = n
		}
	}
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.Width && 0 <= y && y < b.Height
}

func (b *Board) at(x, y int) *Cell {
	return &b.cells[y*b.Width+x]
}

// Cell returns a copy of the square at (x, y) for rendering and inspection.
func (b *Board) Cell(x, y int) Cell {
	return *b.at(x, y)
}

// SafeCells is the number of squares that must be revealed to win.
func (b *Board) SafeCells() int {
	return b.Width*b.Height - b.MineCount
}

// String dumps the full layout, mines included. Debug logging only.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.Height {
		for x := range b.Width {
			var ch string
			switch c := b.at(x, y); {
			case c.Mine:
				ch = "* "
			case c.Neighbors > 0:
				ch = fmt.Sprintf("%d ", c.Neighbors)
			default:
				ch = "- "
			}
			fmt.Fprint(&sb, ch)
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
