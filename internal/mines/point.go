package mines

import "fmt"

// Point is a cell coordinate, x column and y row, zero-based.
type Point struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// Manhattan returns the taxicab distance between a and b.
func Manhattan(a, b Point) int {
	return absDiff(a.X, b.X) + absDiff(a.Y, b.Y)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
