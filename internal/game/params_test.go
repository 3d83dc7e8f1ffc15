package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyPresets(t *testing.T) {
	t.Parallel()

	assert.Equal(t, GameParams{Width: 8, Height: 8, MineCount: 10}, Beginner.Params())
	assert.Equal(t, GameParams{Width: 16, Height: 16, MineCount: 40}, Intermediate.Params())
	assert.Equal(t, GameParams{Width: 24, Height: 20, MineCount: 99}, Expert.Params())

	for d := Beginner; d <= Expert; d++ {
		assert.NoError(t, d.Params().Validate(), d.String())
	}
}

func TestParseDifficulty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Difficulty
		ok    bool
	}{
		{"beginner", Beginner, true},
		{"Intermediate", Intermediate, true},
		{"EXPERT", Expert, true},
		{"", Beginner, false},
		{"nightmare", Beginner, false},
	}

	for _, test := range tests {
		d, err := ParseDifficulty(test.input)
		if test.ok {
			require.NoError(t, err, test.input)
			assert.Equal(t, test.want, d)
		} else {
			assert.Error(t, err, test.input)
		}
	}
}
