package mines

import "fmt"

type RevealOutcome int8

const (
	// RevealNoop means the cell was flagged or already revealed.
	RevealNoop RevealOutcome = iota
	RevealSafe
	RevealMine
)

func (o RevealOutcome) String() string {
	switch o {
	case RevealSafe:
		return "safe"
	case RevealMine:
		return "mine"
	default:
		return "noop"
	}
}

/*
Reveal opens a cell. Flagged and already-open cells yield RevealNoop
without mutating anything. Opening a mine yields RevealMine and stops
there. Opening a zero cell auto-clears its whole empty region plus
the numbered border.
*/
func (b *Board) Reveal(x, y int) (RevealOutcome, error) {
	if !b.InBounds(x, y) {
		return RevealNoop, fmt.Errorf("reveal %d:%d: %w", x, y, ErrOutOfBounds)
	}
	i := b.index(x, y)
	if b.flagged[i] || b.revealed[i] {
		return RevealNoop, nil
	}
	b.revealed[i] = true
	if b.values[i] == Mine {
		return RevealMine, nil
	}
	if b.values[i] == 0 {
		b.floodReveal(x, y)
	}
	return RevealSafe, nil
}

// floodReveal expands from a just-opened zero cell. A zero cell has no
// adjacent mines, so every neighbor it opens is safe; expansion
// continues only through further zeros. Explicit work list: a big
// empty region must not be bounded by the call stack.
func (b *Board) floodReveal(x, y int) {
	todo := []Point{{X: x, Y: y}}
	for len(todo) > 0 {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if !b.InBounds(nx, ny) {
					continue
				}
				i := b.index(nx, ny)
				if b.revealed[i] || b.flagged[i] {
					continue
				}
				b.revealed[i] = true
				if b.values[i] == 0 {
					todo = append(todo, Point{X: nx, Y: ny})
				}
			}
		}
	}
}

// ToggleFlag flips the flag on a covered cell and reports whether the
// cell is flagged afterwards. Revealed cells cannot be flagged.
func (b *Board) ToggleFlag(x, y int) (bool, error) {
	if !b.InBounds(x, y) {
		return false, fmt.Errorf("flag %d:%d: %w", x, y, ErrOutOfBounds)
	}
	i := b.index(x, y)
	if b.revealed[i] {
		return false, nil
	}
	b.flagged[i] = !b.flagged[i]
	return b.flagged[i], nil
}

// Won reports whether every safe cell is revealed. Mines need not be
// flagged.
func (b *Board) Won() bool {
	for i, r := range b.revealed {
		if !r && b.values[i] != Mine {
			return false
		}
	}
	return true
}
