package pigs

// Phase is the lifecycle stage of a game.
type Phase int

const (
	// PhasePregame accepts roster edits.
	PhasePregame Phase = iota
	// PhasePlaying accepts scoring and commit events.
	PhasePlaying
	// PhaseLastTurn is PhasePlaying once every remaining player is on their final turn.
	// It is derived from the last-turn counter and never stored.
	PhaseLastTurn
	// PhaseOver is terminal until NewGame.
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePregame:
		return "pregame"
	case PhasePlaying:
		return "playing"
	case PhaseLastTurn:
		return "last_turn"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Playing reports whether p accepts scoring and commit events.
func (p Phase) Playing() bool {
	return p == PhasePlaying || p == PhaseLastTurn
}

// ComboMode is the state of a mixed combo report.
type ComboMode int

const (
	// ComboIdle means no mixed combo is being reported.
	ComboIdle ComboMode = iota
	// ComboAwaitingFirst means a mixed combo was opened and no face is chosen yet.
	ComboAwaitingFirst
	// ComboAwaitingSecond means the first face is chosen and the second is expected.
	ComboAwaitingSecond
)

// String returns the mode name.
func (m ComboMode) String() string {
	switch m {
	case ComboIdle:
		return "idle"
	case ComboAwaitingFirst:
		return "awaiting_first"
	case ComboAwaitingSecond:
		return "awaiting_second"
	default:
		return "unknown"
	}
}

// Combo is the pending mixed combo selection. First is meaningful only when
// Mode is ComboAwaitingSecond.
type Combo struct {
	Mode  ComboMode
	First DieFace
}

// Pending reports whether a mixed combo is open.
func (c Combo) Pending() bool {
	return c.Mode != ComboIdle
}

// FirstFace returns the chosen first face, if any.
func (c Combo) FirstFace() (DieFace, bool) {
	if c.Mode != ComboAwaitingSecond {
		return 0, false
	}
	return c.First, true
}
