package game

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/nfrolov/sweeper/internal/adaptive"
	"github.com/nfrolov/sweeper/internal/mines"
)

const (
	revealScore = 10
	flagScore   = 5
	hintPenalty = 20

	// a fresh hint unlocks this many successful reveals after the last
	hintCooldownMoves = 3

	winTimeBonus = 1000
)

/*
Session is the single-player game surface the presentation layer talks
to. It owns one board, one tracker and one controller, all fed from
one injected RNG, so independent sessions never share state and tests
can replay a seed.
*/
type Session struct {
	id         uuid.UUID
	params     mines.GameParams
	board      *mines.Board
	tracker    *adaptive.Tracker
	controller *adaptive.Controller
	scorer     *adaptive.Scorer
	startedAt  time.Time
	dead, won  bool
	score      int
	hint       *mines.Point
	// move count at which the next hint unlocks
	hintReadyAt int
}

func NewSession(params mines.GameParams, rng *rand.Rand) (*Session, error) {
	board, err := mines.NewBoard(params, rng)
	if err != nil {
		return nil, err
	}
	tracker := adaptive.NewTracker()
	return &Session{
		id:         uuid.New(),
		params:     params,
		board:      board,
		tracker:    tracker,
		controller: adaptive.NewController(board, tracker, rng),
		scorer:     adaptive.NewScorer(board, tracker),
		startedAt:  time.Now(),
	}, nil
}

func (s *Session) Id() uuid.UUID            { return s.id }
func (s *Session) Params() mines.GameParams { return s.params }
func (s *Session) Dead() bool               { return s.dead }
func (s *Session) Won() bool                { return s.won }
func (s *Session) Over() bool               { return s.dead || s.won }
func (s *Session) Score() int               { return s.score }
func (s *Session) Difficulty() float64      { return s.controller.Difficulty() }
func (s *Session) MoveCount() int           { return s.tracker.MoveCount() }

func (s *Session) Cell(x, y int) (mines.Cell, error) {
	return s.board.Cell(x, y)
}

// Hint returns the most recently requested hint cell, if it is still
// pending (an accepted reveal clears it).
func (s *Session) Hint() (mines.Point, bool) {
	if s.hint == nil {
		return mines.Point{}, false
	}
	return *s.hint, true
}

func (s *Session) HintReady() bool {
	return !s.Over() && s.tracker.MoveCount() >= s.hintReadyAt
}

/*
Reveal opens a cell on the player's behalf. A safe reveal is recorded
as a move and scores points; hitting a mine ends the game. The caller
is expected to invoke AdvanceAiTurn after every RevealSafe and to
check Dead/Won itself.
*/
func (s *Session) Reveal(x, y int) (mines.RevealOutcome, error) {
	if s.Over() {
		return mines.RevealNoop, nil
	}
	outcome, err := s.board.Reveal(x, y)
	if err != nil {
		return outcome, err
	}
	switch outcome {
	case mines.RevealMine:
		s.dead = true
	case mines.RevealSafe:
		s.tracker.RecordMove(mines.Point{X: x, Y: y})
		s.score += revealScore
		s.hint = nil
		if s.board.Won() {
			s.won = true
			if bonus := winTimeBonus - int(time.Since(s.startedAt).Seconds()); bonus > 0 {
				s.score += bonus
			}
		}
	}
	return outcome, nil
}

func (s *Session) ToggleFlag(x, y int) error {
	if s.Over() {
		return nil
	}
	flagged, err := s.board.ToggleFlag(x, y)
	if err != nil {
		return err
	}
	if flagged {
		s.score += flagScore
	}
	return nil
}

// RequestHint returns the lowest-risk covered safe cell. It charges
// the score penalty and starts a cooldown; while the cooldown runs,
// or when no safe cell remains, it reports false.
func (s *Session) RequestHint() (mines.Point, bool) {
	if !s.HintReady() {
		return mines.Point{}, false
	}
	p, ok := s.scorer.Hint(s.controller.Difficulty())
	if !ok {
		return mines.Point{}, false
	}
	s.hint = &p
	s.score -= hintPenalty
	s.hintReadyAt = s.tracker.MoveCount() + hintCooldownMoves
	return p, true
}

// AdvanceAiTurn runs the adaptive controller once. Callers invoke it
// after every reveal that returned RevealSafe.
func (s *Session) AdvanceAiTurn() {
	if s.Over() {
		return
	}
	s.controller.Advance()
}
