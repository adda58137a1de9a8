package adaptive

import "github.com/nfrolov/sweeper/internal/mines"

// Scorer ranks covered cells by how risky opening them looks given
// recent player behavior.
type Scorer struct {
	board   *mines.Board
	tracker *Tracker
}

func NewScorer(board *mines.Board, tracker *Tracker) *Scorer {
	return &Scorer{board: board, tracker: tracker}
}

// ScoreRisk sums the pull of nearby danger zones, scaled by the
// difficulty scalar, plus half the number value of every revealed
// neighbor.
func (s *Scorer) ScoreRisk(p mines.Point, difficulty float64) float64 {
	var risk float64
	for _, z := range s.tracker.Zones() {
		if d := mines.Manhattan(p, z); d <= clusterDist {
			risk += float64(4-d) * difficulty
		}
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := p.X+dx, p.Y+dy
			if s.board.InBounds(nx, ny) && s.board.RevealedAt(nx, ny) {
				risk += 0.5 * float64(s.board.ValueAt(nx, ny))
			}
		}
	}
	return risk
}

// Hint returns the covered, unflagged, safe cell with the lowest risk
// score, or false when none is left. Ties go to the first candidate
// in row-major order, which keeps the answer deterministic for a
// given board and zone set.
func (s *Scorer) Hint(difficulty float64) (mines.Point, bool) {
	var (
		best      mines.Point
		bestScore float64
		found     bool
	)
	for y := range s.board.Height() {
		for x := range s.board.Width() {
			if s.board.RevealedAt(x, y) || s.board.FlaggedAt(x, y) {
				continue
			}
			p := mines.Point{X: x, Y: y}
			if s.board.MineAt(p) {
				continue
			}
			score := s.ScoreRisk(p, difficulty)
			if !found || score < bestScore {
				best, bestScore, found = p, score, true
			}
		}
	}
	return best, found
}
