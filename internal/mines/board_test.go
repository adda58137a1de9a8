package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// checkInvariant asserts that every non-mine cell's stored value
// matches a live recount and that the mine set mirrors the value
// array exactly.
func checkInvariant(t *testing.T, b *Board) {
	t.Helper()
	mineCells := 0
	for y := range b.Height() {
		for x := range b.Width() {
			p := Point{X: x, Y: y}
			if b.ValueAt(x, y) == Mine {
				mineCells++
				assert.True(t, b.MineAt(p), "value says mine at %s, set disagrees", p)
			} else {
				assert.False(t, b.MineAt(p), "set says mine at %s, value disagrees", p)
				assert.EqualValues(t, b.CountAdjacentMines(x, y), b.ValueAt(x, y),
					"stale number at %s", p)
			}
		}
	}
	assert.Equal(t, b.MineCount(), mineCells)
	assert.Len(t, b.Mines(), b.MineCount())
}

func TestNewBoard(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "easy", params: Easy},
		{name: "medium", params: Medium},
		{name: "hard", params: Hard},
		{name: "mineless", params: GameParams{Width: 4, Height: 4}},
		{name: "nearly full", params: GameParams{Width: 3, Height: 3, MineCount: 8}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(1, 2))
			b, err := NewBoard(test.params, r)
			require.NoError(t, err)
			assert.Equal(t, test.params.MineCount, b.MineCount())
			checkInvariant(t, b)
		})
	}
}

func TestNewBoardRejectsBadParams(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "mines fill board", params: GameParams{Width: 3, Height: 3, MineCount: 9}},
		{name: "mines exceed board", params: GameParams{Width: 2, Height: 2, MineCount: 10}},
		{name: "zero width", params: GameParams{Width: 0, Height: 5, MineCount: 1}},
		{name: "negative mines", params: GameParams{Width: 5, Height: 5, MineCount: -1}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(1, 2))
			_, err := NewBoard(test.params, r)
			assert.Error(t, err)
		})
	}
}

func TestNewBoardFromMines(t *testing.T) {
	b, err := NewBoardFromMines(
		GameParams{Width: 3, Height: 3, MineCount: 1},
		[]Point{{X: 0, Y: 0}},
	)
	require.NoError(t, err)

	assert.Equal(t, Mine, b.ValueAt(0, 0))
	assert.EqualValues(t, 1, b.ValueAt(1, 0))
	assert.EqualValues(t, 1, b.ValueAt(0, 1))
	assert.EqualValues(t, 1, b.ValueAt(1, 1))
	assert.EqualValues(t, 0, b.ValueAt(2, 2))
	checkInvariant(t, b)

	_, err = NewBoardFromMines(
		GameParams{Width: 3, Height: 3, MineCount: 2},
		[]Point{{X: 0, Y: 0}, {X: 0, Y: 0}},
	)
	assert.Error(t, err, "duplicate mine positions must be rejected")

	_, err = NewBoardFromMines(
		GameParams{Width: 3, Height: 3, MineCount: 1},
		[]Point{{X: 5, Y: 5}},
	)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestRelocateMine(t *testing.T) {
	b, err := NewBoardFromMines(
		GameParams{Width: 5, Height: 5, MineCount: 1},
		[]Point{{X: 0, Y: 0}},
	)
	require.NoError(t, err)

	b.RelocateMine(Point{X: 0, Y: 0}, Point{X: 2, Y: 2})

	assert.False(t, b.MineAt(Point{X: 0, Y: 0}))
	assert.True(t, b.MineAt(Point{X: 2, Y: 2}))
	assert.EqualValues(t, 0, b.ValueAt(0, 0), "vacated cell gets a recomputed number")
	assert.Equal(t, Mine, b.ValueAt(2, 2))
	assert.EqualValues(t, 1, b.ValueAt(1, 1))
	checkInvariant(t, b)
}

func TestRelocateMineStaleAttempts(t *testing.T) {
	b, err := NewBoardFromMines(
		GameParams{Width: 4, Height: 4, MineCount: 2},
		[]Point{{X: 0, Y: 0}, {X: 3, Y: 3}},
	)
	require.NoError(t, err)

	// no mine at source
	b.RelocateMine(Point{X: 1, Y: 1}, Point{X: 2, Y: 2})
	// mine already at target
	b.RelocateMine(Point{X: 0, Y: 0}, Point{X: 3, Y: 3})
	// out of bounds
	b.RelocateMine(Point{X: 0, Y: 0}, Point{X: 9, Y: 9})
	b.RelocateMine(Point{X: -1, Y: 0}, Point{X: 2, Y: 2})

	assert.True(t, b.MineAt(Point{X: 0, Y: 0}))
	assert.True(t, b.MineAt(Point{X: 3, Y: 3}))
	assert.False(t, b.MineAt(Point{X: 2, Y: 2}))
	checkInvariant(t, b)
}

func TestRelocateUnderFire(t *testing.T) {
	// shuffle a mine around a lot, recounting the whole grid each time
	b, err := NewBoardFromMines(
		GameParams{Width: 8, Height: 8, MineCount: 3},
		[]Point{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 7, Y: 0}},
	)
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		ms := b.Mines()
		from := ms[r.IntN(len(ms))]
		to := Point{X: r.IntN(8), Y: r.IntN(8)}
		b.RelocateMine(from, to)
	}
	checkInvariant(t, b)
}

func TestCountAdjacentMinesClipsAtEdges(t *testing.T) {
	b, err := NewBoardFromMines(
		GameParams{Width: 3, Height: 3, MineCount: 2},
		[]Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, b.CountAdjacentMines(0, 1))
	assert.Equal(t, 2, b.CountAdjacentMines(1, 1))
	assert.Equal(t, 1, b.CountAdjacentMines(2, 0))
	assert.Equal(t, 0, b.CountAdjacentMines(2, 2))
}
