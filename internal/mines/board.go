package mines

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

var Log = logrus.New()

var ErrOutOfBounds = errors.New("coordinates out of bounds")

// CellValue is what a cell holds: Mine, or the 0-8 count of mines in
// its 8-neighborhood.
type CellValue int8

const Mine CellValue = -1

func (v CellValue) String() string {
	if v == Mine {
		return "*"
	}
	return fmt.Sprintf("%d", int8(v))
}

// Cell is the read-only view of a single cell exposed to callers that
// render board state.
type Cell struct {
	Value    CellValue
	Revealed bool
	Flagged  bool
}

/*
Board keeps two views of the mine layout: the per-cell value array and
the mine set. They must never diverge; RelocateMine is the only place
mines move after construction and it updates both.
*/
type Board struct {
	width, height int
	mineCount     int
	values        []CellValue
	revealed      []bool
	flagged       []bool
	mines         mapset.Set[Point]
}

// NewBoard places params.MineCount mines uniformly at random without
// replacement and computes every neighbor count.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := emptyBoard(params)
	for _, i := range r.Perm(params.CellCount())[:params.MineCount] {
		b.values[i] = Mine
		b.mines.Put(Point{X: i % b.width, Y: i / b.width})
	}
	b.recomputeNumbers(0, 0, b.width-1, b.height-1)
	return b, nil
}

// NewBoardFromMines builds a board with a fixed mine layout. Callers
// that need reproducible boards (and the test suite) use this instead
// of the random constructor.
func NewBoardFromMines(params GameParams, minePoints []Point) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(minePoints) != params.MineCount {
		return nil, fmt.Errorf(
			"board %s: got %d mine positions", params, len(minePoints),
		)
	}
	b := emptyBoard(params)
	for _, p := range minePoints {
		if !b.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("mine at %s: %w", p, ErrOutOfBounds)
		}
		if b.mines.Has(p) {
			return nil, fmt.Errorf("duplicate mine at %s", p)
		}
		b.values[b.index(p.X, p.Y)] = Mine
		b.mines.Put(p)
	}
	b.recomputeNumbers(0, 0, b.width-1, b.height-1)
	return b, nil
}

func emptyBoard(params GameParams) *Board {
	n := params.CellCount()
	return &Board{
		width:     params.Width,
		height:    params.Height,
		mineCount: params.MineCount,
		values:    make([]CellValue, n),
		revealed:  make([]bool, n),
		flagged:   make([]bool, n),
		mines:     mapset.New[Point](),
	}
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

// Cell bound-checks; the At helpers below do not and callers must.
func (b *Board) Cell(x, y int) (Cell, error) {
	if !b.InBounds(x, y) {
		return Cell{}, fmt.Errorf("cell %d:%d: %w", x, y, ErrOutOfBounds)
	}
	i := b.index(x, y)
	return Cell{
		Value:    b.values[i],
		Revealed: b.revealed[i],
		Flagged:  b.flagged[i],
	}, nil
}

func (b *Board) ValueAt(x, y int) CellValue { return b.values[b.index(x, y)] }
func (b *Board) RevealedAt(x, y int) bool   { return b.revealed[b.index(x, y)] }
func (b *Board) FlaggedAt(x, y int) bool    { return b.flagged[b.index(x, y)] }

func (b *Board) MineAt(p Point) bool {
	return b.mines.Has(p)
}

// Mines returns the current mine positions in arbitrary order.
func (b *Board) Mines() []Point {
	ms := make([]Point, 0, b.mines.Size())
	b.mines.Each(func(p Point) {
		ms = append(ms, p)
	})
	return ms
}

func (b *Board) RevealedCount() (count int) {
	for _, r := range b.revealed {
		if r {
			count++
		}
	}
	return
}

func (b *Board) CountAdjacentMines(x, y int) (count int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.InBounds(x+dx, y+dy) && b.values[b.index(x+dx, y+dy)] == Mine {
				count++
			}
		}
	}
	return
}

// recomputeNumbers reapplies CountAdjacentMines to every non-mine cell
// in the given rectangle, clipped to the grid.
func (b *Board) recomputeNumbers(x0, y0, x1, y1 int) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.width-1), min(y1, b.height-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if i := b.index(x, y); b.values[i] != Mine {
				b.values[i] = CellValue(b.CountAdjacentMines(x, y))
			}
		}
	}
}

/*
RelocateMine moves a mine from one cell to another and renumbers the
two 3x3 neighborhoods around them, the only cells whose counts can
have changed. Stale attempts (no mine at from, or a mine already at
to) are silent no-ops: the adaptive layer fires best-effort moves
against state that may have shifted under it.
*/
func (b *Board) RelocateMine(from, to Point) {
	if !b.InBounds(from.X, from.Y) || !b.InBounds(to.X, to.Y) {
		return
	}
	if !b.mines.Has(from) || b.mines.Has(to) {
		return
	}
	b.values[b.index(from.X, from.Y)] = 0
	b.values[b.index(to.X, to.Y)] = Mine
	b.mines.Remove(from)
	b.mines.Put(to)
	b.recomputeNumbers(from.X-1, from.Y-1, from.X+1, from.Y+1)
	b.recomputeNumbers(to.X-1, to.Y-1, to.X+1, to.Y+1)
	Log.WithFields(logrus.Fields{
		"from": from.String(),
		"to":   to.String(),
	}).Debug("mine relocated")
}

func (b *Board) String() string {
	var s strings.Builder
	for y := range b.height {
		for x := range b.width {
			i := b.index(x, y)
			var ch string
			switch {
			case b.flagged[i]:
				ch = "! "
			case !b.revealed[i]:
				ch = "- "
			default:
				ch = b.values[i].String() + " "
			}
			fmt.Fprint(&s, ch)
		}
		fmt.Fprint(&s, "\n")
	}
	return s.String()
}
