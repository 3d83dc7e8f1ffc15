package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/lo"
)

// Each cell renders as a symbol plus a spacer column, like the original
// fixed-width board layout.
const cellWidth = 2

// Counter in the status line is three digits wide; the engine value is not
// capped, only the display.
const maxDisplaySeconds = 999

func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()

	a.drawStatus(w)
	a.drawBoard(w, h)
	if a.game.Done() {
		a.drawBanner(w, h)
	}

	a.screen.Show()
}

func (a *App) drawStatus(w int) {
	g := a.game
	status := fmt.Sprintf(
		"Time: %3ds | Flags: %2d | %s",
		min(int(g.Elapsed().Seconds()), maxDisplaySeconds),
		g.FlagsLeft(),
		a.difficulty,
	)
	if best, ok := a.lb.Best(a.difficulty); ok {
		status += fmt.Sprintf(" | Best: %ds", int(best.Playtime.Seconds()))
	}
	a.drawText((w-len(status))/2, 0, status, styleStatus)
}

func (a *App) drawBoard(w, h int) {
	g := a.game
	originX := max((w-g.Width*cellWidth)/2, 0)
	originY := max((h-g.Height)/2, 1)

	for y := range g.Height {
		for x := range g.Width {
			c := g.Cell(x, y)
			cursor := x == g.CursorX && y == g.CursorY && !g.Done()
			a.screen.SetContent(
				originX+x*cellWidth, originY+y,
				cellRune(c), nil,
				cellStyle(c, cursor),
			)
		}
	}
}

func (a *App) drawBanner(w, h int) {
	msg := lo.Ternary(a.game.Won,
		" You won! Press R to restart, Q to quit ",
		" You lost! Press R to restart, Q to quit ",
	)
	style := lo.Ternary(a.game.Won, styleWin, styleLose)
	a.drawText((w-len(msg))/2, h-2, msg, style)
}

func (a *App) drawText(x, y int, s string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}
