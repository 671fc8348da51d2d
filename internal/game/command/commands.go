// Package command provides the command registry, parser, and built-in command definitions
// for the scorekeeper console.
package command

// Categories for organizing commands.
const (
	CategoryRoster = "roster"
	CategoryRoll   = "roll"
	CategoryTurn   = "turn"
	CategorySystem = "system"
)

// CategoryOrder is the order categories are listed in help output.
var CategoryOrder = []string{CategoryRoster, CategoryRoll, CategoryTurn, CategorySystem}

// Handler identifiers mapping commands to game operations.
const (
	HandlerAdd    = "add"
	HandlerDraft  = "draft"
	HandlerStart  = "start"
	HandlerNew    = "new"
	HandlerLean   = "lean"
	HandlerDouble = "double"
	HandlerCombo  = "combo"
	HandlerPick   = "pick"
	HandlerThrow  = "throw"
	HandlerPigOut = "pigout"
	HandlerBacon  = "bacon"
	HandlerStatus = "status"
	HandlerHelp   = "help"
	HandlerQuit   = "quit"
)

// Command defines a console command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage describes the arguments, e.g. "<face>". Empty when none are taken.
	Usage string
	// Help is the short help text.
	Help string
	// Category groups the command (roster, roll, turn, system).
	Category string
	// Handler maps to the game operation.
	Handler string
}

// BuiltinCommands returns all built-in commands.
func BuiltinCommands() []Command {
	return []Command{
		// Roster commands
		{Name: "add", Aliases: []string{"a"}, Usage: "[name]", Help: "Add a player (no name adds the draft)", Category: CategoryRoster, Handler: HandlerAdd},
		{Name: "draft", Aliases: []string{"name"}, Usage: "<text>", Help: "Stage a player name for add", Category: CategoryRoster, Handler: HandlerDraft},
		{Name: "start", Aliases: []string{"go"}, Help: "Start the game", Category: CategoryRoster, Handler: HandlerStart},
		{Name: "new", Aliases: []string{"reset"}, Help: "Discard everything and start over", Category: CategoryRoster, Handler: HandlerNew},

		// Single pig reports, scored against a sider
		{Name: "sider", Aliases: []string{"si"}, Help: "Pig on its side", Category: CategoryRoll, Handler: HandlerLean},
		{Name: "hoofer", Aliases: []string{"ho", "trotter"}, Help: "Pig standing up", Category: CategoryRoll, Handler: HandlerLean},
		{Name: "razorback", Aliases: []string{"rb"}, Help: "Pig on its back", Category: CategoryRoll, Handler: HandlerLean},
		{Name: "snouter", Aliases: []string{"sn"}, Help: "Pig on its snout", Category: CategoryRoll, Handler: HandlerLean},
		{Name: "jowler", Aliases: []string{"lj"}, Help: "Leaning jowler", Category: CategoryRoll, Handler: HandlerLean},
		{Name: "double", Aliases: []string{"dbl", "2x"}, Usage: "<face>", Help: "Both pigs show the same face", Category: CategoryRoll, Handler: HandlerDouble},
		{Name: "combo", Aliases: []string{"mc", "mixed"}, Help: "Open (or cancel) a mixed combo", Category: CategoryRoll, Handler: HandlerCombo},
		{Name: "pick", Aliases: []string{"p"}, Usage: "<face>", Help: "Report one pig of a mixed combo", Category: CategoryRoll, Handler: HandlerPick},
		{Name: "throw", Aliases: []string{"toss", "t"}, Help: "Throw the pigs for the current player", Category: CategoryRoll, Handler: HandlerThrow},

		// Turn commits
		{Name: "pigout", Aliases: []string{"po"}, Help: "End the turn and bank the turn points", Category: CategoryTurn, Handler: HandlerPigOut},
		{Name: "bacon", Aliases: []string{"mb", "makinbacon"}, Help: "End the turn and lose the turn points", Category: CategoryTurn, Handler: HandlerBacon},

		// System commands
		{Name: "status", Aliases: []string{"look", "l"}, Help: "Show the table", Category: CategorySystem, Handler: HandlerStatus},
		{Name: "help", Aliases: []string{"?", "h"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "Leave the scorekeeper", Category: CategorySystem, Handler: HandlerQuit},
	}
}
