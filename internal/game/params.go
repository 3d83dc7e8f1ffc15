package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadDimensions = errors.New("board dimensions must be positive")
	ErrTooManyMines  = errors.New("mine count must leave at least one safe square")
)

type GameParams struct {
	Width, Height, MineCount int
}

// Validate rejects parameter sets that would make mine placement loop
// forever or produce an unwinnable board. The fixed presets always pass.
func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount >= p.Width*p.Height {
		return fmt.Errorf("%w: %d mines on %dx%d", ErrTooManyMines,
			p.MineCount, p.Width, p.Height)
	}
	return nil
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

// Difficulty selects one of the three fixed presets.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Expert
)

var difficulties = [...]struct {
	label  string
	params GameParams
}{
	Beginner:     {"Beginner", GameParams{Width: 8, Height: 8, MineCount: 10}},
	Intermediate: {"Intermediate", GameParams{Width: 16, Height: 16, MineCount: 40}},
	Expert:       {"Expert", GameParams{Width: 24, Height: 20, MineCount: 99}},
}

func (d Difficulty) Valid() bool {
	return Beginner <= d && d <= Expert
}

func (d Difficulty) Params() GameParams {
	return difficulties[d].params
}

func (d Difficulty) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return difficulties[d].label
}

func ParseDifficulty(s string) (Difficulty, error) {
	for d, preset := range difficulties {
		if strings.EqualFold(s, preset.label) {
			return Difficulty(d), nil
		}
	}
	return Beginner, fmt.Errorf("unknown difficulty %q", s)
}
