package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrolov/sweeper/internal/mines"
)

func TestParseDifficultyPresets(t *testing.T) {
	tests := []struct {
		in   string
		want mines.GameParams
	}{
		{in: "easy", want: mines.Easy},
		{in: "medium", want: mines.Medium},
		{in: "hard", want: mines.Hard},
		{in: "  Hard ", want: mines.Hard},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := ParseDifficulty(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParseDifficultyCustom(t *testing.T) {
	got, err := ParseDifficulty("width=30&height=16&mine_count=99")
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 30, Height: 16, MineCount: 99}, got)

	// unknown keys are ignored
	got, err = ParseDifficulty("width=5&height=5&mine_count=3&theme=dark")
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 5, Height: 5, MineCount: 3}, got)
}

func TestParseDifficultyRejectsNonsense(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "unknown preset", in: "nightmare"},
		{name: "missing fields", in: "width=10"},
		{name: "mines fill board", in: "width=3&height=3&mine_count=9"},
		{name: "garbage values", in: "width=abc&height=16&mine_count=99"},
		{name: "empty", in: ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseDifficulty(test.in)
			assert.Error(t, err)
		})
	}
}
