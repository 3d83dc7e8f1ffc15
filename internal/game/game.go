package game

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Game couples a Board with the state of one play-through: cursor, flag
// budget, terminal flags and timestamps. A Game is replaced wholesale on
// restart; nothing carries over between instances.
type Game struct {
	*Board
	Id               uuid.UUID
	CursorX, CursorY int
	Over, Won        bool

	flags              int
	startedAt, endedAt time.Time
}

func New(params GameParams, r *rand.Rand) (*Game, error) {
	board, err := NewBoard(params, r)
	if err != nil {
		return nil, err
	}
	g := &Game{Board: board, Id: uuid.New()}
	Log.WithFields(logrus.Fields{
		"game_id": g.Id,
		"params":  params.String(),
	}).Debug("new game")
	Log.Trace("layout:\n", board)
	return g, nil
}

// Done reports whether a terminal transition has happened. Once it has, every
// board-mutating command is ignored until the Game is replaced.
func (g *Game) Done() bool {
	return g.Over || g.Won
}

// Reveal opens the square at (x, y). Opening a mined square is the losing
// terminal transition; opening the last safe square is the winning one.
// A zero-neighbor square floods open its whole region through an explicit
// worklist, so large open areas never grow the call stack.
func (g *Game) Reveal(x, y int) {
	if g.Done() {
		return
	}
	g.touch()

	c := g.at(x, y)
	if c.State != Hidden {
		return
	}

	if c.Mine {
		// Expose only the mine that was hit; the rest of the board keeps
		// its state.
		c.State = Revealed
		g.Over = true
		g.finish()
		Log.WithFields(logrus.Fields{
			"game_id": g.Id, "x": x, "y": y,
		}).Debug("mine hit")
		return
	}

	todo := []int{y*g.Width + x}
	for len(todo) > 0 {
		i := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		c := &g.cells[i]
		if c.State != Hidden {
			continue
		}
		c.State = Revealed
		if c.Neighbors > 0 {
			// Border of the open region: revealed, but does not spread.
			continue
		}

		cx, cy := i%g.Width, i/g.Width
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := cx+dx, cy+dy
				if g.InBounds(xx, yy) && g.at(xx, yy).State == Hidden {
					todo = append(todo, yy*g.Width+xx)
				}
			}
		}
	}

	g.checkVictory()
}

// ToggleFlag flags a hidden square or unflags a flagged one. Flagging is a
// no-op once the budget of MineCount flags is spent; revealed squares cannot
// be flagged.
func (g *Game) ToggleFlag(x, y int) {
	if g.Done() {
		return
	}
	g.touch()

	switch c := g.at(x, y); {
	case c.State == Hidden && g.flags < g.MineCount:
		c.State = Flagged
		g.flags++
	case c.State == Flagged:
		c.State = Hidden
		g.flags--
	}
}

// checkVictory rescans the whole board; the win condition is every safe
// square revealed, regardless of where flags sit.
func (g *Game) checkVictory() {
	revealed := 0
	for i := range g.cells {
		if c := g.cells[i]; c.State == Revealed && !c.Mine {
			revealed++
		}
	}
	if revealed == g.SafeCells() {
		g.Won = true
		g.finish()
		Log.WithFields(logrus.Fields{
			"game_id":  g.Id,
			"playtime": g.Elapsed().String(),
		}).Debug("game won")
	}
}

func (g *Game) MoveUp()    { g.moveCursor(0, -1) }
func (g *Game) MoveDown()  { g.moveCursor(0, 1) }
func (g *Game) MoveLeft()  { g.moveCursor(-1, 0) }
func (g *Game) MoveRight() { g.moveCursor(1, 0) }

func (g *Game) moveCursor(dx, dy int) {
	if g.Done() {
		return
	}
	g.CursorX = lo.Clamp(g.CursorX+dx, 0, g.Width-1)
	g.CursorY = lo.Clamp(g.CursorY+dy, 0, g.Height-1)
}

// FlagsLeft is the remaining flag budget, shown in the status line.
func (g *Game) FlagsLeft() int {
	return g.MineCount - g.flags
}

func (g *Game) FlagsPlaced() int {
	return g.flags
}

// Elapsed is zero before the first interaction, live while the game runs and
// frozen at endedAt-startedAt after a terminal transition.
func (g *Game) Elapsed() time.Duration {
	switch {
	case g.startedAt.IsZero():
		return 0
	case g.endedAt.IsZero():
		return time.Since(g.startedAt)
	default:
		return g.endedAt.Sub(g.startedAt)
	}
}

// touch starts the clock on the first reveal or flag attempt.
func (g *Game) touch() {
	if g.startedAt.IsZero() {
		g.startedAt = time.Now()
	}
}

func (g *Game) finish() {
	if g.endedAt.IsZero() {
		g.endedAt = time.Now()
	}
}
