// Package tui renders the game with tcell and maps keys to engine commands.
// The engine never blocks; this package owns the event loop, the redraw tick
// and the restart/quit handling.
package tui

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/WilsonHuang080705/minesweeper/internal/game"
	"github.com/WilsonHuang080705/minesweeper/internal/leaderboard"
)

var Log = logrus.New()

// The clock in the status line only has whole-second resolution; a few
// redraws per second keeps it smooth without busy-looping.
const redrawInterval = 250 * time.Millisecond

type App struct {
	screen     tcell.Screen
	lb         *leaderboard.Leaderboard
	difficulty game.Difficulty
	rng        *rand.Rand

	game     *game.Game
	recorded bool // leaderboard already updated for the current game
}

func New(lb *leaderboard.Leaderboard, d game.Difficulty, rng *rand.Rand) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newApp(screen, lb, d, rng)
}

func newApp(
	screen tcell.Screen, lb *leaderboard.Leaderboard,
	d game.Difficulty, rng *rand.Rand,
) (*App, error) {
	g, err := game.New(d.Params(), rng)
	if err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	return &App{
		screen:     screen,
		lb:         lb,
		difficulty: d,
		rng:        rng,
		game:       g,
	}, nil
}

// Run drives the draw/input loop until the player quits or ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	for {
		a.draw()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				if done := a.handleKey(ev); done {
					return nil
				}
			}
		}
	}
}

// Close restores the terminal. Must run after Run returns, even on error.
func (a *App) Close() {
	a.screen.Fini()
}

// handleKey maps one key press to one engine command. Reports true when the
// player wants out.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		a.game.MoveUp()
	case tcell.KeyDown:
		a.game.MoveDown()
	case tcell.KeyLeft:
		a.game.MoveLeft()
	case tcell.KeyRight:
		a.game.MoveRight()
	case tcell.KeyEnter:
		a.reveal()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'r', 'R':
			if a.game.Done() {
				a.restart()
			}
		case ' ':
			a.reveal()
		case 'f', 'F':
			a.game.ToggleFlag(a.game.CursorX, a.game.CursorY)
		}
	}
	return false
}

func (a *App) reveal() {
	g := a.game
	g.Reveal(g.CursorX, g.CursorY)
	if g.Won && !a.recorded {
		a.recorded = true
		improved := a.lb.Update(a.difficulty, g.Id, g.Elapsed())
		Log.WithFields(logrus.Fields{
			"game_id":    g.Id,
			"difficulty": a.difficulty.String(),
			"playtime":   g.Elapsed().String(),
			"record":     improved,
		}).Info("victory")
	}
}

// restart replaces the engine wholesale; only the leaderboard survives.
func (a *App) restart() {
	g, err := game.New(a.difficulty.Params(), a.rng)
	if err != nil {
		// Presets always validate; anything else is a bug worth surfacing.
		Log.WithError(err).Error("restart failed")
		return
	}
	a.game = g
	a.recorded = false
}
