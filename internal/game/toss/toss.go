// Package toss simulates throwing the two pigs for players without a set on
// hand, turning each throw into the events a player would have reported.
package toss

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/pigs/internal/game/pigs"
)

// Weights are the relative landing frequencies of each face, per thousand
// throws of a single pig.
var Weights = map[pigs.DieFace]int{
	pigs.Sider:     651,
	pigs.Razorback: 224,
	pigs.Hoofer:    88,
	pigs.Snouter:   30,
	pigs.Jowler:    7,
}

// Throw is the resting position of both pigs.
type Throw struct {
	First  pigs.DieFace
	Second pigs.DieFace
}

// String renders the throw as "first+second".
func (t Throw) String() string {
	return t.First.String() + "+" + t.Second.String()
}

// Events converts the throw into the report a player would make:
//   - two siders, or one sider with anything, is a single-pig report of the other face;
//   - two matching non-sider faces are a double;
//   - two different non-sider faces are a mixed combo.
//
// Postcondition: Applying the events in order to a playing game with no
// pending combo adds exactly Lookup(First, Second) turn points.
func (t Throw) Events() []pigs.Event {
	switch {
	case t.First == pigs.Sider:
		return []pigs.Event{{Kind: pigs.EventLean, Face: t.Second}}
	case t.Second == pigs.Sider:
		return []pigs.Event{{Kind: pigs.EventLean, Face: t.First}}
	case t.First == t.Second:
		return []pigs.Event{{Kind: pigs.EventDouble, Face: t.First}}
	default:
		return []pigs.Event{
			{Kind: pigs.EventToggleCombo},
			{Kind: pigs.EventPickComboFace, Face: t.First},
			{Kind: pigs.EventPickComboFace, Face: t.Second},
		}
	}
}

// Thrower throws pigs using a Source and logs every throw.
type Thrower struct {
	src    Source
	total  int
	logger *zap.Logger
}

// NewThrower creates a Thrower drawing from src.
//
// Precondition: src must be non-nil. A nil logger is replaced by a no-op logger.
func NewThrower(src Source, logger *zap.Logger) *Thrower {
	if logger == nil {
		logger = zap.NewNop()
	}
	total := 0
	for _, w := range Weights {
		total += w
	}
	return &Thrower{src: src, total: total, logger: logger}
}

// Throw lands both pigs.
func (t *Thrower) Throw() Throw {
	return Throw{First: t.land(), Second: t.land()}
}

func (t *Thrower) land() pigs.DieFace {
	n := t.src.Intn(t.total)
	for _, f := range pigs.Faces() {
		if n < Weights[f] {
			return f
		}
		n -= Weights[f]
	}
	// Unreachable while Weights covers every face.
	return pigs.Sider
}

// ThrowFor throws both pigs and reports the result to g as the current player.
//
// Precondition: g is playing and has no pending combo.
// Postcondition: On error the game is unchanged and the returned Throw is zero.
func (t *Thrower) ThrowFor(g *pigs.Game) (Throw, error) {
	if !g.Phase().Playing() {
		return Throw{}, fmt.Errorf("throw during %s: %w", g.Phase(), pigs.ErrWrongPhase)
	}
	if g.Combo().Pending() {
		return Throw{}, fmt.Errorf("throw: %w", pigs.ErrComboPending)
	}

	th := t.Throw()
	for _, ev := range th.Events() {
		if err := g.Apply(ev); err != nil {
			return Throw{}, fmt.Errorf("applying %s: %w", ev.Kind, err)
		}
	}

	player, _ := g.Current()
	t.logger.Debug("pigs thrown",
		zap.String("game_id", g.ID()),
		zap.String("player", player),
		zap.Stringer("throw", th),
		zap.Int("turn_points", g.TurnPoints()),
	)
	return th, nil
}
