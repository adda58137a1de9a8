package mines

import "fmt"

type GameParams struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

// Difficulty presets.
var (
	Easy   = GameParams{Width: 10, Height: 10, MineCount: 10}
	Medium = GameParams{Width: 16, Height: 16, MineCount: 40}
	Hard   = GameParams{Width: 20, Height: 20, MineCount: 80}
)

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("board %s: dimensions must be positive", p)
	}
	if p.MineCount < 0 {
		return fmt.Errorf("board %s: mine count must not be negative", p)
	}
	if p.MineCount >= p.CellCount() {
		return fmt.Errorf(
			"board %s: mine count must be less than cell count %d",
			p, p.CellCount(),
		)
	}
	return nil
}
