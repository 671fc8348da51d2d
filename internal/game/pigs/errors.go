package pigs

import "errors"

// Protocol violations. Every operation that returns one of these leaves the
// game state unchanged.
var (
	// ErrWrongPhase is returned when an event arrives in a phase that does not accept it.
	ErrWrongPhase = errors.New("event not accepted in current phase")
	// ErrNotEnoughPlayers is returned by StartGame when the roster is below Rules.MinPlayers.
	ErrNotEnoughPlayers = errors.New("not enough players")
	// ErrDuplicatePlayer is returned when a name is already on the roster.
	ErrDuplicatePlayer = errors.New("player already registered")
	// ErrEmptyName is returned when a player name is blank.
	ErrEmptyName = errors.New("player name must not be empty")
	// ErrInvalidFace is returned for a face that the event does not accept.
	ErrInvalidFace = errors.New("invalid die face")
	// ErrComboPending is returned when a single or double report arrives while a mixed combo is open.
	ErrComboPending = errors.New("mixed combo in progress")
	// ErrNoComboPending is returned when a combo face is picked with no mixed combo open.
	ErrNoComboPending = errors.New("no mixed combo in progress")
	// ErrGameNotOver is returned by the ranking queries before the game has ended.
	ErrGameNotOver = errors.New("game is not over")
	// ErrUnknownEvent is returned by Apply for an unrecognised event kind.
	ErrUnknownEvent = errors.New("unknown event")
)
