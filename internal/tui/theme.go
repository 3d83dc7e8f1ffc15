package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/WilsonHuang080705/minesweeper/internal/game"
)

const (
	runeHidden = '■'
	runeFlag   = '⚑'
	runeMine   = '*'
	runeEmpty  = ' '
)

var (
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleWin    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLose   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Classic minesweeper digit palette, trimmed to the colors that read well on
// both dark and light terminals.
var numberColors = map[int]tcell.Color{
	1: tcell.ColorBlue,
	2: tcell.ColorGreen,
	3: tcell.ColorRed,
	4: tcell.ColorNavy,
	5: tcell.ColorMaroon,
	6: tcell.ColorTeal,
}

func cellRune(c game.Cell) rune {
	switch c.State {
	case game.Flagged:
		return runeFlag
	case game.Hidden:
		return runeHidden
	default:
		switch {
		case c.Mine:
			return runeMine
		case c.Neighbors > 0:
			return rune('0' + c.Neighbors)
		default:
			return runeEmpty
		}
	}
}

func cellStyle(c game.Cell, cursor bool) tcell.Style {
	style := tcell.StyleDefault
	switch {
	case c.State == game.Flagged:
		style = style.Foreground(tcell.ColorRed)
	case c.State == game.Revealed && c.Mine:
		style = style.Foreground(tcell.ColorRed).Bold(true)
	case c.State == game.Revealed && c.Neighbors > 0:
		if color, ok := numberColors[c.Neighbors]; ok {
			style = style.Foreground(color)
		}
	}
	if cursor {
		style = style.Background(tcell.ColorDarkGray)
	}
	return style
}
