package pigs

// Snapshot is a read-only copy of everything a view needs to render a game.
type Snapshot struct {
	GameID      string
	Phase       Phase
	TargetScore int
	MinPlayers  int
	// Players is the rotation; Players[0] is Current.
	Players []string
	Current string
	// Scores lists committed scores in registration order.
	Scores        []Standing
	TurnPoints    int
	Combo         Combo
	LastTurn      bool
	LastTurnCount int
	Draft         string
	// Standings is the ranked list, populated only in PhaseOver.
	Standings []Standing
	// Winners names everyone tied for the top score, populated only in PhaseOver.
	Winners []string
}

// Snapshot captures the current state. It never mutates the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		GameID:        g.id.String(),
		Phase:         g.Phase(),
		TargetScore:   g.rules.TargetScore,
		MinPlayers:    g.rules.MinPlayers,
		Players:       g.Players(),
		Scores:        g.bySeat(),
		TurnPoints:    g.turnPoints,
		Combo:         g.combo,
		LastTurn:      g.IsLastTurn(),
		LastTurnCount: g.lastTurnCount,
		Draft:         g.draft,
	}
	s.Current, _ = g.Current()
	if g.phase == PhaseOver {
		s.Standings = g.ranked()
		s.Winners, _ = g.Winners()
	}
	return s
}

// CanStart reports whether StartGame would succeed.
func (s Snapshot) CanStart() bool {
	return s.Phase == PhasePregame && len(s.Players) >= s.MinPlayers
}
