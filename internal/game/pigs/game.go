package pigs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Standing is one player's committed score.
type Standing struct {
	Name  string
	Score int
}

// Game holds the live state of one Pass the Pigs game: the roster rotation,
// the scoreboard, the current turn accumulator and the phase.
//
// Game is not safe for concurrent use. The host must apply one event at a time.
type Game struct {
	table  *Table
	rules  Rules
	logger *zap.Logger

	id    uuid.UUID
	phase Phase // only PhasePregame, PhasePlaying or PhaseOver are stored

	// seats is registration order; players is the rotation with the active player at 0.
	seats   []string
	players []string
	scores  map[string]int
	draft   string

	turnPoints int
	combo      Combo

	lastTurnTriggered bool
	lastTurnCount     int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for scoring and commit events.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithRules overrides DefaultRules.
func WithRules(r Rules) Option {
	return func(g *Game) { g.rules = r }
}

// WithTable overrides DefaultTable.
func WithTable(t *Table) Option {
	return func(g *Game) { g.table = t }
}

// New creates a game in PhasePregame with an empty roster.
//
// Postcondition: Returns a ready Game, or an error if the rules are invalid or the table is nil.
func New(opts ...Option) (*Game, error) {
	g := &Game{
		table:  DefaultTable(),
		rules:  DefaultRules(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.table == nil {
		return nil, errors.New("pigs: scoring table must not be nil")
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if err := g.rules.Validate(); err != nil {
		return nil, err
	}
	g.reset()
	return g, nil
}

func (g *Game) reset() {
	g.id = uuid.New()
	g.phase = PhasePregame
	g.seats = nil
	g.players = nil
	g.scores = make(map[string]int)
	g.draft = ""
	g.turnPoints = 0
	g.combo = Combo{}
	g.lastTurnTriggered = false
	g.lastTurnCount = 0
}

// UpdateDraft stages a player name for AddDraftPlayer. It never touches the roster.
func (g *Game) UpdateDraft(text string) {
	g.draft = text
}

// AddPlayer appends name to the rotation with a zero score.
//
// Precondition: phase is PhasePregame; name is non-blank and not yet registered.
// Postcondition: On success the player is last in the rotation; on error state is unchanged.
func (g *Game) AddPlayer(name string) error {
	if g.phase != PhasePregame {
		return g.wrongPhase("add player")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("add player: %w", ErrEmptyName)
	}
	if _, exists := g.scores[name]; exists {
		return fmt.Errorf("add player %q: %w", name, ErrDuplicatePlayer)
	}

	g.seats = append(g.seats, name)
	g.players = append(g.players, name)
	g.scores[name] = 0

	g.logger.Info("player added",
		zap.String("game_id", g.id.String()),
		zap.String("player", name),
		zap.Int("players", len(g.players)),
	)
	return nil
}

// AddDraftPlayer adds the staged draft name and clears the draft.
//
// Postcondition: The draft is cleared only when the player was added.
func (g *Game) AddDraftPlayer() error {
	if err := g.AddPlayer(g.draft); err != nil {
		return err
	}
	g.draft = ""
	return nil
}

// StartGame moves from PhasePregame to PhasePlaying.
//
// Precondition: at least Rules.MinPlayers players are registered.
// Postcondition: Phase is PhasePlaying, or state is unchanged and an error is returned.
func (g *Game) StartGame() error {
	if g.phase != PhasePregame {
		return g.wrongPhase("start game")
	}
	if len(g.players) < g.rules.MinPlayers {
		return fmt.Errorf("start game with %d players (need %d): %w",
			len(g.players), g.rules.MinPlayers, ErrNotEnoughPlayers)
	}
	g.phase = PhasePlaying
	g.logger.Info("game started",
		zap.String("game_id", g.id.String()),
		zap.Strings("players", g.players),
		zap.Int("target_score", g.rules.TargetScore),
	)
	return nil
}

// NewGame discards everything and returns to an empty PhasePregame under a new game ID.
// It is accepted in every phase.
func (g *Game) NewGame() {
	prev := g.id
	g.reset()
	g.logger.Info("new game",
		zap.String("game_id", g.id.String()),
		zap.String("previous_game_id", prev.String()),
	)
}

// Lean records a single pig showing face while its partner lies on its side.
// It scores the pair (face, Sider).
//
// Precondition: phase is playing; no mixed combo is open.
// Postcondition: TurnPoints grows by Lookup(face, Sider), or state is unchanged and an error is returned.
func (g *Game) Lean(face DieFace) error {
	if err := g.requirePlaying("lean"); err != nil {
		return err
	}
	if !face.Valid() {
		return fmt.Errorf("lean: %w: %s", ErrInvalidFace, face)
	}
	if g.combo.Pending() {
		return fmt.Errorf("lean %s: %w", face, ErrComboPending)
	}
	g.score("lean", face, Sider)
	return nil
}

// Double records both pigs showing face. Sider doubles are reported with Lean(Sider).
//
// Precondition: phase is playing; face is not Sider; no mixed combo is open.
// Postcondition: TurnPoints grows by Lookup(face, face), or state is unchanged and an error is returned.
func (g *Game) Double(face DieFace) error {
	if err := g.requirePlaying("double"); err != nil {
		return err
	}
	if !isComboFace(face) {
		return fmt.Errorf("double: %w: %s", ErrInvalidFace, face)
	}
	if g.combo.Pending() {
		return fmt.Errorf("double %s: %w", face, ErrComboPending)
	}
	g.score("double", face, face)
	return nil
}

// ToggleCombo opens a mixed combo report, or cancels the open one.
//
// Precondition: phase is playing.
// Postcondition: Combo mode flips between ComboIdle and ComboAwaitingFirst; a chosen first face is discarded on cancel.
func (g *Game) ToggleCombo() error {
	if err := g.requirePlaying("mixed combo"); err != nil {
		return err
	}
	if g.combo.Pending() {
		g.combo = Combo{}
		g.logger.Debug("mixed combo cancelled", zap.String("game_id", g.id.String()))
		return nil
	}
	g.combo = Combo{Mode: ComboAwaitingFirst}
	return nil
}

// PickComboFace reports one pig of an open mixed combo. The second pick scores
// the pair exactly once and closes the combo.
//
// Precondition: phase is playing; a mixed combo is open; face is not Sider.
// Postcondition: Combo advances or closes, or state is unchanged and an error is returned.
func (g *Game) PickComboFace(face DieFace) error {
	if err := g.requirePlaying("pick combo face"); err != nil {
		return err
	}
	if !isComboFace(face) {
		return fmt.Errorf("pick combo face: %w: %s", ErrInvalidFace, face)
	}
	switch g.combo.Mode {
	case ComboAwaitingFirst:
		g.combo = Combo{Mode: ComboAwaitingSecond, First: face}
	case ComboAwaitingSecond:
		first := g.combo.First
		g.combo = Combo{}
		g.score("mixed_combo", first, face)
	default:
		return fmt.Errorf("pick combo face %s: %w", face, ErrNoComboPending)
	}
	return nil
}

// PigOut ends the turn and banks the turn points into the active player's score.
//
// Precondition: phase is playing.
// Postcondition: The active player's score grows by TurnPoints, then the end-of-turn sequence runs.
func (g *Game) PigOut() error {
	if err := g.requirePlaying("pig out"); err != nil {
		return err
	}
	current := g.players[0]
	banked := g.turnPoints
	g.scores[current] += banked
	g.endTurn("pig_out", current, banked)
	return nil
}

// MakinBacon ends the turn and forfeits the turn points.
//
// Precondition: phase is playing.
// Postcondition: The scoreboard is unchanged, then the end-of-turn sequence runs.
func (g *Game) MakinBacon() error {
	if err := g.requirePlaying("makin bacon"); err != nil {
		return err
	}
	g.endTurn("makin_bacon", g.players[0], 0)
	return nil
}

func (g *Game) score(kind string, a, b DieFace) {
	points := g.table.Lookup(a, b)
	g.turnPoints += points
	g.logger.Debug("pigs scored",
		zap.String("game_id", g.id.String()),
		zap.String("kind", kind),
		zap.Stringer("first", a),
		zap.Stringer("second", b),
		zap.Int("points", points),
		zap.Int("turn_points", g.turnPoints),
	)
}

// endTurn runs the shared commit sequence: last-turn accounting, the game-over
// check, clearing the turn state and rotating the active player to the back.
func (g *Game) endTurn(kind, player string, banked int) {
	discarded := g.turnPoints - banked

	if !g.lastTurnTriggered && g.anyAtTarget() {
		g.lastTurnTriggered = true
		g.logger.Info("target score reached",
			zap.String("game_id", g.id.String()),
			zap.String("player", player),
			zap.Int("target_score", g.rules.TargetScore),
		)
	}
	if g.lastTurnTriggered {
		g.lastTurnCount++
	}
	if g.lastTurnCount >= len(g.players) {
		g.phase = PhaseOver
	}

	g.turnPoints = 0
	g.combo = Combo{}

	first := g.players[0]
	copy(g.players, g.players[1:])
	g.players[len(g.players)-1] = first

	g.logger.Info("turn committed",
		zap.String("game_id", g.id.String()),
		zap.String("kind", kind),
		zap.String("player", player),
		zap.Int("banked", banked),
		zap.Int("discarded", discarded),
		zap.Int("score", g.scores[player]),
		zap.Int("last_turn_count", g.lastTurnCount),
		zap.Stringer("phase", g.Phase()),
	)
	if g.phase == PhaseOver {
		g.logger.Info("game over",
			zap.String("game_id", g.id.String()),
			zap.Any("standings", g.ranked()),
		)
	}
}

func (g *Game) anyAtTarget() bool {
	for _, s := range g.scores {
		if s >= g.rules.TargetScore {
			return true
		}
	}
	return false
}

func (g *Game) requirePlaying(op string) error {
	if g.phase != PhasePlaying {
		return g.wrongPhase(op)
	}
	if len(g.players) == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotEnoughPlayers)
	}
	return nil
}

func (g *Game) wrongPhase(op string) error {
	return fmt.Errorf("%s during %s: %w", op, g.Phase(), ErrWrongPhase)
}

// ID returns the identifier of the current game. NewGame assigns a fresh one.
func (g *Game) ID() string {
	return g.id.String()
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Phase returns the observable phase, reporting PhaseLastTurn while playing
// once IsLastTurn holds.
func (g *Game) Phase() Phase {
	if g.IsLastTurn() {
		return PhaseLastTurn
	}
	return g.phase
}

// IsLastTurn reports whether every remaining player is on their final turn.
func (g *Game) IsLastTurn() bool {
	return g.phase == PhasePlaying && g.lastTurnCount >= len(g.players)-1
}

// LastTurnCount returns how many turns have been committed since the target score was first reached.
func (g *Game) LastTurnCount() int {
	return g.lastTurnCount
}

// Players returns a copy of the rotation; index 0 is the active player.
func (g *Game) Players() []string {
	out := make([]string, len(g.players))
	copy(out, g.players)
	return out
}

// Current returns the active player.
//
// Postcondition: ok is false when the roster is empty.
func (g *Game) Current() (name string, ok bool) {
	if len(g.players) == 0 {
		return "", false
	}
	return g.players[0], true
}

// Scoreboard returns a copy of every player's committed score.
func (g *Game) Scoreboard() map[string]int {
	out := make(map[string]int, len(g.scores))
	for name, s := range g.scores {
		out[name] = s
	}
	return out
}

// Score returns one player's committed score.
func (g *Game) Score(name string) (int, bool) {
	s, ok := g.scores[name]
	return s, ok
}

// TurnPoints returns the uncommitted points of the current turn.
func (g *Game) TurnPoints() int {
	return g.turnPoints
}

// Combo returns the pending mixed combo selection.
func (g *Game) Combo() Combo {
	return g.combo
}

// Draft returns the staged player name.
func (g *Game) Draft() string {
	return g.draft
}

// Standings returns every player ranked by descending score. Ties keep
// registration order; deciding how to present them is left to the caller.
//
// Precondition: phase is PhaseOver.
func (g *Game) Standings() ([]Standing, error) {
	if g.phase != PhaseOver {
		return nil, fmt.Errorf("standings during %s: %w", g.Phase(), ErrGameNotOver)
	}
	return g.ranked(), nil
}

// Winners returns every player sharing the top score.
//
// Precondition: phase is PhaseOver.
func (g *Game) Winners() ([]string, error) {
	ranked, err := g.Standings()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, s := range ranked {
		if s.Score != ranked[0].Score {
			break
		}
		out = append(out, s.Name)
	}
	return out, nil
}

func (g *Game) ranked() []Standing {
	out := g.bySeat()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func (g *Game) bySeat() []Standing {
	out := make([]Standing, 0, len(g.seats))
	for _, name := range g.seats {
		out = append(out, Standing{Name: name, Score: g.scores[name]})
	}
	return out
}
