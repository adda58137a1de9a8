package adaptive

import (
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/nfrolov/sweeper/internal/mines"
)

const (
	MinDifficulty = 0.5
	MaxDifficulty = 2.0

	difficultyStep = 0.1

	driftChance     = 0.2
	driftMinDist    = 5
	driftRadius     = 2
	transformChance = 0.1
	armChance       = 0.3

	highSuccessRate = 0.8
	lowSuccessRate  = 0.5
)

/*
Controller mutates the board between player turns. Three independent
Bernoulli effects run after every successful reveal: mines drift
toward danger zones, a random covered tile may be defused or armed,
and the difficulty scalar tracks the player's success rate. Every
layout change goes through Board.RelocateMine, so the number
invariant survives whatever the dice decide.
*/
type Controller struct {
	board      *mines.Board
	tracker    *Tracker
	difficulty float64
	rng        *rand.Rand
}

func NewController(board *mines.Board, tracker *Tracker, rng *rand.Rand) *Controller {
	return &Controller{
		board:      board,
		tracker:    tracker,
		difficulty: 1.0,
		rng:        rng,
	}
}

func (c *Controller) Difficulty() float64 {
	return c.difficulty
}

// Advance runs one adaptive turn.
func (c *Controller) Advance() {
	c.driftMines()
	c.transformTile()
	c.rebalance()
}

func (c *Controller) driftMines() {
	for _, zone := range c.tracker.Zones() {
		if c.rng.Float64() < driftChance*c.difficulty {
			c.driftMineToward(zone)
		}
	}
}

// driftMineToward pulls some mine from outside the zone's
// neighborhood onto the first free covered cell in the 5x5 block
// around the zone. No qualifying mine or no free cell means no drift.
func (c *Controller) driftMineToward(zone mines.Point) {
	var src mines.Point
	found := false
	for _, m := range c.board.Mines() {
		if mines.Manhattan(m, zone) > driftMinDist {
			src, found = m, true
			break
		}
	}
	if !found {
		return
	}
	for dx := -driftRadius; dx <= driftRadius; dx++ {
		for dy := -driftRadius; dy <= driftRadius; dy++ {
			x, y := zone.X+dx, zone.Y+dy
			if !c.board.InBounds(x, y) || c.board.RevealedAt(x, y) {
				continue
			}
			to := mines.Point{X: x, Y: y}
			if c.board.MineAt(to) {
				continue
			}
			c.board.RelocateMine(src, to)
			Log.WithFields(logrus.Fields{
				"zone": zone.String(),
				"from": src.String(),
				"to":   to.String(),
			}).Debug("mine drifted toward danger zone")
			return
		}
	}
}

func (c *Controller) transformTile() {
	if c.rng.Float64() >= transformChance {
		return
	}
	covered := c.coveredCells(false)
	if len(covered) == 0 {
		return
	}
	target := covered[c.rng.IntN(len(covered))]
	if c.board.MineAt(target) {
		c.defuse(target)
	} else if c.rng.Float64() < armChance*c.difficulty {
		c.arm(target)
	}
}

// defuse moves a mine off target onto a random covered safe cell.
func (c *Controller) defuse(target mines.Point) {
	safe := c.coveredCells(true)
	if len(safe) == 0 {
		return
	}
	to := safe[c.rng.IntN(len(safe))]
	c.board.RelocateMine(target, to)
	Log.WithField("cell", target.String()).Debug("mine defused")
}

// arm turns a safe covered cell into a mine by relocating whichever
// mine the set yields first onto it.
func (c *Controller) arm(target mines.Point) {
	ms := c.board.Mines()
	if len(ms) == 0 {
		return
	}
	c.board.RelocateMine(ms[0], target)
	Log.WithField("cell", target.String()).Debug("tile armed")
}

// coveredCells lists unrevealed cells in row-major order, optionally
// excluding mines.
func (c *Controller) coveredCells(excludeMines bool) []mines.Point {
	var cells []mines.Point
	for y := range c.board.Height() {
		for x := range c.board.Width() {
			if c.board.RevealedAt(x, y) {
				continue
			}
			p := mines.Point{X: x, Y: y}
			if excludeMines && c.board.MineAt(p) {
				continue
			}
			cells = append(cells, p)
		}
	}
	return cells
}

// rebalance nudges the difficulty scalar by the windowed success
// ratio: history moves still landing on safe cells over all revealed
// cells. Flood fills inflate the denominator, which deliberately
// eases off after large clears.
func (c *Controller) rebalance() {
	revealed := c.board.RevealedCount()
	if revealed == 0 {
		return
	}
	safe := 0
	for _, m := range c.tracker.History() {
		if !c.board.MineAt(m) {
			safe++
		}
	}
	rate := float64(safe) / float64(revealed)
	before := c.difficulty
	switch {
	case rate > highSuccessRate:
		c.difficulty = math.Min(MaxDifficulty, c.difficulty+difficultyStep)
	case rate < lowSuccessRate:
		c.difficulty = math.Max(MinDifficulty, c.difficulty-difficultyStep)
	}
	if c.difficulty != before {
		Log.WithFields(logrus.Fields{
			"rate":       rate,
			"difficulty": c.difficulty,
		}).Debug("difficulty rebalanced")
	}
}
