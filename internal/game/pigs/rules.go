package pigs

import (
	"fmt"
	"strings"
)

// Standard rule values.
const (
	DefaultTargetScore = 100
	DefaultMinPlayers  = 2
)

// Rules holds the tunable parameters of a game.
type Rules struct {
	// TargetScore is the score that, once reached by any player, starts the last turn.
	TargetScore int
	// MinPlayers is the roster size required by StartGame.
	MinPlayers int
}

// DefaultRules returns the standard rules: first to 100, at least two players.
func DefaultRules() Rules {
	return Rules{TargetScore: DefaultTargetScore, MinPlayers: DefaultMinPlayers}
}

// Validate checks the rule invariants.
//
// Postcondition: Returns nil if the rules are usable, or an error describing all violations.
func (r Rules) Validate() error {
	var errs []string
	if r.TargetScore < 1 {
		errs = append(errs, fmt.Sprintf("target score must be >= 1, got %d", r.TargetScore))
	}
	if r.MinPlayers < DefaultMinPlayers {
		errs = append(errs, fmt.Sprintf("min players must be >= %d, got %d", DefaultMinPlayers, r.MinPlayers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid rules: %s", strings.Join(errs, "; "))
	}
	return nil
}
