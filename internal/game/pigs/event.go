package pigs

import "fmt"

// EventKind identifies one input event of the engine.
type EventKind int

const (
	EventAddPlayer EventKind = iota + 1
	EventUpdateDraft
	EventStartGame
	EventNewGame
	EventLean
	EventDouble
	EventToggleCombo
	EventPickComboFace
	EventPigOut
	EventMakinBacon
)

var eventNames = map[EventKind]string{
	EventAddPlayer:     "add_player",
	EventUpdateDraft:   "update_draft",
	EventStartGame:     "start_game",
	EventNewGame:       "new_game",
	EventLean:          "lean",
	EventDouble:        "double",
	EventToggleCombo:   "toggle_combo",
	EventPickComboFace: "pick_combo_face",
	EventPigOut:        "pig_out",
	EventMakinBacon:    "makin_bacon",
}

// String returns the event name.
func (k EventKind) String() string {
	if n, ok := eventNames[k]; ok {
		return n
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a single input from the presentation layer.
// Face is used by EventLean, EventDouble and EventPickComboFace; Name by
// EventAddPlayer (blank means "add the staged draft") and EventUpdateDraft.
type Event struct {
	Kind EventKind
	Face DieFace
	Name string
}

// Apply dispatches ev to the matching operation and runs it to completion.
//
// Postcondition: Returns the operation's error; on error the state is unchanged.
func (g *Game) Apply(ev Event) error {
	switch ev.Kind {
	case EventAddPlayer:
		if ev.Name == "" {
			return g.AddDraftPlayer()
		}
		return g.AddPlayer(ev.Name)
	case EventUpdateDraft:
		g.UpdateDraft(ev.Name)
		return nil
	case EventStartGame:
		return g.StartGame()
	case EventNewGame:
		g.NewGame()
		return nil
	case EventLean:
		return g.Lean(ev.Face)
	case EventDouble:
		return g.Double(ev.Face)
	case EventToggleCombo:
		return g.ToggleCombo()
	case EventPickComboFace:
		return g.PickComboFace(ev.Face)
	case EventPigOut:
		return g.PigOut()
	case EventMakinBacon:
		return g.MakinBacon()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEvent, ev.Kind)
	}
}
