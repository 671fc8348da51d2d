package console

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cory-johannsen/pigs/internal/game/command"
	"github.com/cory-johannsen/pigs/internal/game/pigs"
)

// Renderer formats game state and command output as console text.
type Renderer struct {
	palette Palette
}

// NewRenderer creates a Renderer. color toggles ANSI styling.
func NewRenderer(color bool) *Renderer {
	return &Renderer{palette: Palette{Enabled: color}}
}

// RenderTable formats a snapshot as the full scoreboard view.
//
// Postcondition: The output names every player with their committed score.
// The current player is marked while a game is in progress. The ranked
// standings and winners are included once the game is over.
func (r *Renderer) RenderTable(s pigs.Snapshot) string {
	var b strings.Builder
	p := r.palette

	b.WriteString(p.Colorize(BrightYellow, "Pass the Pigs"))
	b.WriteString(p.Colorf(Dim, "  [%s]  first to %d", s.Phase, s.TargetScore))
	b.WriteString("\n")

	switch s.Phase {
	case pigs.PhasePregame:
		r.writePregame(&b, s)
	case pigs.PhaseOver:
		r.writeOver(&b, s)
	default:
		r.writePlaying(&b, s)
	}
	return b.String()
}

func (r *Renderer) writePregame(b *strings.Builder, s pigs.Snapshot) {
	p := r.palette
	if len(s.Players) == 0 {
		b.WriteString(p.Colorize(Dim, "  No players yet."))
		b.WriteString("\n")
	} else {
		b.WriteString(p.Colorize(Cyan, "Players:"))
		b.WriteString("\n")
		for i, name := range s.Players {
			fmt.Fprintf(b, "  %d. %s\n", i+1, name)
		}
	}
	if s.Draft != "" {
		fmt.Fprintf(b, "Draft: %s\n", s.Draft)
	}
	if s.CanStart() {
		b.WriteString(p.Colorize(BrightGreen, "Ready. Type start to begin."))
	} else {
		need := s.MinPlayers - len(s.Players)
		b.WriteString(p.Colorf(Yellow, "Add %d more %s to start.", need, plural(need, "player", "players")))
	}
	b.WriteString("\n")
}

func (r *Renderer) writePlaying(b *strings.Builder, s pigs.Snapshot) {
	p := r.palette
	if s.LastTurn {
		b.WriteString(p.Colorize(Bold+BrightRed, "Last turn!"))
		b.WriteString("\n")
	}

	width := nameWidth(s.Scores)
	b.WriteString(p.Colorize(Cyan, "Scores:"))
	b.WriteString("\n")
	for _, st := range s.Scores {
		marker := "  "
		line := fmt.Sprintf("%s %4d", runewidth.FillRight(st.Name, width), st.Score)
		if st.Name == s.Current {
			marker = "> "
			line = p.Colorize(BrightWhite, line)
		}
		b.WriteString("  " + marker + line + "\n")
	}

	b.WriteString(p.Colorf(BrightCyan, "%s to roll", s.Current))
	fmt.Fprintf(b, "  turn points: %d\n", s.TurnPoints)

	switch s.Combo.Mode {
	case pigs.ComboAwaitingFirst:
		b.WriteString(p.Colorize(Magenta, "Pig one?"))
		b.WriteString("\n")
	case pigs.ComboAwaitingSecond:
		first, _ := s.Combo.FirstFace()
		b.WriteString(p.Colorf(Magenta, "Pig two? (pig one: %s)", first))
		b.WriteString("\n")
	}
}

func (r *Renderer) writeOver(b *strings.Builder, s pigs.Snapshot) {
	p := r.palette
	winners := s.Winners
	if len(winners) == 1 {
		b.WriteString(p.Colorf(Bold+BrightGreen, "%s wins!", winners[0]))
	} else {
		b.WriteString(p.Colorf(Bold+BrightGreen, "Tie: %s", strings.Join(winners, ", ")))
	}
	b.WriteString("\n")

	width := nameWidth(s.Standings)
	for i, st := range s.Standings {
		fmt.Fprintf(b, "  %d. %s %4d\n", i+1, runewidth.FillRight(st.Name, width), st.Score)
	}
	b.WriteString(p.Colorize(Dim, "Type new to play again."))
	b.WriteString("\n")
}

// RenderHelp formats the command listing grouped by category.
func (r *Renderer) RenderHelp(reg *command.Registry) string {
	var b strings.Builder
	p := r.palette
	byCat := reg.CommandsByCategory()

	width := 0
	for _, cmd := range reg.Commands() {
		if w := runewidth.StringWidth(usageLine(cmd)); w > width {
			width = w
		}
	}

	for _, cat := range command.CategoryOrder {
		cmds := byCat[cat]
		if len(cmds) == 0 {
			continue
		}
		b.WriteString(p.Colorize(Cyan, strings.ToUpper(cat[:1])+cat[1:]+":"))
		b.WriteString("\n")
		for _, cmd := range cmds {
			fmt.Fprintf(&b, "  %s  %s", p.Colorize(BrightWhite, runewidth.FillRight(usageLine(cmd), width)), cmd.Help)
			if len(cmd.Aliases) > 0 {
				b.WriteString(p.Colorf(Dim, " (%s)", strings.Join(cmd.Aliases, ", ")))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString(p.Colorf(Dim, "Faces: %s", faceList()))
	b.WriteString("\n")
	return b.String()
}

// RenderError formats a rejected operation.
func (r *Renderer) RenderError(err error) string {
	return r.palette.Colorf(Red, "! %v", err) + "\n"
}

// RenderInfo formats an informational line.
func (r *Renderer) RenderInfo(format string, args ...interface{}) string {
	return r.palette.Colorf(Green, format, args...) + "\n"
}

// RenderPrompt formats the input prompt.
func (r *Renderer) RenderPrompt(prompt string) string {
	return r.palette.Colorize(BrightYellow, prompt)
}

func usageLine(cmd *command.Command) string {
	if cmd.Usage == "" {
		return cmd.Name
	}
	return cmd.Name + " " + cmd.Usage
}

func faceList() string {
	names := make([]string, 0, len(pigs.Faces()))
	for _, f := range pigs.Faces() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func nameWidth(standings []pigs.Standing) int {
	width := 0
	for _, st := range standings {
		if w := runewidth.StringWidth(st.Name); w > width {
			width = w
		}
	}
	return width
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
