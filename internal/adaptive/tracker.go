package adaptive

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/nfrolov/sweeper/internal/mines"
)

var Log = logrus.New()

const (
	// zones farther than this from the latest move are dropped
	zoneRetainDist = 5
	clusterSize    = 3
	clusterDist    = 3
)

/*
Tracker keeps the append-only move history for a session and derives
danger zones from it: whenever the last three moves sit pairwise
within Manhattan distance 3 of each other, their floor-centroid is
remembered as a zone. Zones fade once play moves away from them.
*/
type Tracker struct {
	history []mines.Point
	zones   mapset.Set[mines.Point]
}

func NewTracker() *Tracker {
	return &Tracker{zones: mapset.New[mines.Point]()}
}

func (t *Tracker) RecordMove(p mines.Point) {
	t.history = append(t.history, p)
	t.updateZones(p)
}

func (t *Tracker) MoveCount() int {
	return len(t.history)
}

// History returns the recorded moves in play order. The slice is
// shared; callers must not mutate it.
func (t *Tracker) History() []mines.Point {
	return t.history
}

// Zones returns the current danger zones in arbitrary order.
func (t *Tracker) Zones() []mines.Point {
	zs := make([]mines.Point, 0, t.zones.Size())
	t.zones.Each(func(z mines.Point) {
		zs = append(zs, z)
	})
	return zs
}

func (t *Tracker) updateZones(latest mines.Point) {
	var stale []mines.Point
	t.zones.Each(func(z mines.Point) {
		if mines.Manhattan(z, latest) > zoneRetainDist {
			stale = append(stale, z)
		}
	})
	for _, z := range stale {
		t.zones.Remove(z)
	}

	if len(t.history) < clusterSize {
		return
	}
	recent := t.history[len(t.history)-clusterSize:]
	if !clustered(recent) {
		return
	}
	c := centroid(recent)
	if t.zones.Has(c) {
		return
	}
	t.zones.Put(c)
	Log.WithField("zone", c.String()).Debug("danger zone added")
}

// clustered is a strict all-pairs check: one far pair rejects the
// whole cluster.
func clustered(moves []mines.Point) bool {
	for i := range moves {
		for j := i + 1; j < len(moves); j++ {
			if mines.Manhattan(moves[i], moves[j]) > clusterDist {
				return false
			}
		}
	}
	return true
}

func centroid(moves []mines.Point) mines.Point {
	var sx, sy int
	for _, m := range moves {
		sx += m.X
		sy += m.Y
	}
	return mines.Point{X: sx / len(moves), Y: sy / len(moves)}
}
