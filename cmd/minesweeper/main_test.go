package main

import (
	"strings"
	"testing"

	"github.com/WilsonHuang080705/minesweeper/internal/game"
)

func TestPromptDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  game.Difficulty
	}{
		{"1\n", game.Beginner},
		{"2\n", game.Intermediate},
		{"3\n", game.Expert},
		{"9\n", game.Expert},
		{"0\n", game.Beginner},
		{"-2\n", game.Beginner},
		{"garbage\n", game.Beginner},
		{"\n", game.Beginner},
		{"", game.Beginner},
	}

	for _, test := range tests {
		if have := promptDifficulty(strings.NewReader(test.input)); have != test.want {
			t.Errorf("promptDifficulty(%q) = %s, want %s", test.input, have, test.want)
		}
	}
}
