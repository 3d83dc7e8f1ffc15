package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  GameParams
		wantErr error
	}{
		{"beginner", Beginner.Params(), nil},
		{"intermediate", Intermediate.Params(), nil},
		{"expert", Expert.Params(), nil},
		{"zero width", GameParams{Width: 0, Height: 8, MineCount: 5}, ErrBadDimensions},
		{"negative height", GameParams{Width: 8, Height: -1, MineCount: 5}, ErrBadDimensions},
		{"negative mines", GameParams{Width: 8, Height: 8, MineCount: -1}, ErrTooManyMines},
		{"no safe square", GameParams{Width: 3, Height: 3, MineCount: 9}, ErrTooManyMines},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			err := test.params.Validate()
			if test.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.wantErr)
			}
		})
	}
}

func TestNewBoardRejectsBadParams(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	_, err := NewBoard(GameParams{Width: 2, Height: 2, MineCount: 4}, r)
	assert.ErrorIs(t, err, ErrTooManyMines)
}

func TestMineCountInvariant(t *testing.T) {
	t.Parallel()

	for d := Beginner; d <= Expert; d++ {
		t.Run(d.String(), func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for range 20 {
				b, err := NewBoard(d.Params(), r)
				require.NoError(t, err)

				mines := 0
				for y := range b.Height {
					for x := range b.Width {
						if b.Cell(x, y).Mine {
							mines++
						}
					}
				}
				assert.Equal(t, b.MineCount, mines)
			}
		})
	}
}

func TestNeighborCountsMatchLayout(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 4))
	for range 20 {
		b, err := NewBoard(Intermediate.Params(), r)
		require.NoError(t, err)

		for y := range b.Height {
			for x := range b.Width {
				if b.Cell(x, y).Mine {
					continue
				}
				want := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						if b.InBounds(x+dx, y+dy) && b.Cell(x+dx, y+dy).Mine {
							want++
						}
					}
				}
				assert.Equal(t, want, b.Cell(x, y).Neighbors,
					"cell %d:%d", x, y)
			}
		}
	}
}

func TestBoardString(t *testing.T) {
	t.Parallel()

	b := testBoard(t, 3, 1, [2]int{2, 0})
	assert.Equal(t, "- 1 * \n", b.String())
}

func TestNeighborCountsCornerMine(t *testing.T) {
	t.Parallel()

	b := testBoard(t, 3, 3, [2]int{2, 2})

	assert.Equal(t, 1, b.Cell(1, 1).Neighbors)
	assert.Equal(t, 1, b.Cell(2, 1).Neighbors)
	assert.Equal(t, 1, b.Cell(1, 2).Neighbors)
	for _, p := range [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {0, 2}} {
		assert.Equal(t, 0, b.Cell(p[0], p[1]).Neighbors, "cell %v", p)
	}
}
