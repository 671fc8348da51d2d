package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/pigs/internal/config"
	"github.com/cory-johannsen/pigs/internal/game/command"
	"github.com/cory-johannsen/pigs/internal/game/pigs"
	"github.com/cory-johannsen/pigs/internal/game/toss"
)

// Session drives one game from a line-oriented input stream.
type Session struct {
	game     *pigs.Game
	registry *command.Registry
	thrower  *toss.Thrower
	render   *Renderer
	prompt   string
	logger   *zap.Logger
}

// NewSession creates a Session bound to game.
//
// Precondition: game and registry must be non-nil.
// Postcondition: Returns a ready Session. A nil thrower is replaced by one
// backed by crypto/rand; a nil logger by a no-op logger.
func NewSession(game *pigs.Game, registry *command.Registry, thrower *toss.Thrower, cfg config.ConsoleConfig, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if thrower == nil {
		thrower = toss.NewThrower(toss.NewCryptoSource(), logger)
	}
	return &Session{
		game:     game,
		registry: registry,
		thrower:  thrower,
		render:   NewRenderer(cfg.Color),
		prompt:   cfg.Prompt,
		logger:   logger,
	}
}

// Run reads commands from in until quit, EOF, or ctx cancellation, writing
// all output to out.
//
// Postcondition: Returns nil on quit, EOF, or cancellation, and a non-nil
// error if reading or writing fails.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("session started", zap.String("game_id", s.game.ID()))

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	if _, err := io.WriteString(out, s.render.RenderTable(s.game.Snapshot())+s.render.RenderPrompt(s.prompt)); err != nil {
		return fmt.Errorf("writing banner: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session cancelled", zap.String("game_id", s.game.ID()))
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			s.logger.Info("input closed", zap.String("game_id", s.game.ID()))
			return nil
		case line := <-lines:
			output, quit := s.Execute(line)
			if !quit {
				output += s.render.RenderPrompt(s.prompt)
			}
			if _, err := io.WriteString(out, output); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			if quit {
				s.logger.Info("session ended", zap.String("game_id", s.game.ID()))
				return nil
			}
		}
	}
}

// Execute runs a single input line against the game and returns the text to
// show, plus whether the session should end.
//
// Postcondition: A rejected operation leaves the game unchanged and its error
// is rendered into the returned text.
func (s *Session) Execute(line string) (output string, quit bool) {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return "", false
	}

	cmd, ok := s.registry.Resolve(parsed.Command)
	if !ok {
		return s.render.RenderError(fmt.Errorf("unknown command %q, type help for a list", parsed.Command)), false
	}

	var err error
	switch cmd.Handler {
	case command.HandlerAdd:
		if parsed.RawArgs == "" {
			err = s.game.AddDraftPlayer()
		} else {
			err = s.game.AddPlayer(parsed.RawArgs)
		}

	case command.HandlerDraft:
		s.game.UpdateDraft(parsed.RawArgs)
		return s.render.RenderInfo("Draft: %s", s.game.Draft()), false

	case command.HandlerStart:
		err = s.game.StartGame()

	case command.HandlerNew:
		s.game.NewGame()

	case command.HandlerLean:
		var face pigs.DieFace
		if face, err = pigs.ParseFace(cmd.Name); err == nil {
			err = s.game.Lean(face)
		}

	case command.HandlerDouble, command.HandlerPick:
		if parsed.Arg(0) == "" {
			return s.render.RenderError(fmt.Errorf("usage: %s %s", cmd.Name, cmd.Usage)), false
		}
		var face pigs.DieFace
		if face, err = pigs.ParseFace(parsed.Arg(0)); err == nil {
			if cmd.Handler == command.HandlerDouble {
				err = s.game.Double(face)
			} else {
				err = s.game.PickComboFace(face)
			}
		}

	case command.HandlerThrow:
		var th toss.Throw
		if th, err = s.thrower.ThrowFor(s.game); err == nil {
			return s.render.RenderInfo("Threw %s.", th) + s.render.RenderTable(s.game.Snapshot()), false
		}

	case command.HandlerCombo:
		err = s.game.ToggleCombo()

	case command.HandlerPigOut:
		err = s.game.PigOut()

	case command.HandlerBacon:
		err = s.game.MakinBacon()

	case command.HandlerStatus:

	case command.HandlerHelp:
		return s.render.RenderHelp(s.registry), false

	case command.HandlerQuit:
		return s.render.RenderInfo("Bye."), true

	default:
		err = fmt.Errorf("command %q is not wired to a handler", cmd.Name)
	}

	if err != nil {
		s.logger.Debug("command rejected",
			zap.String("command", cmd.Name),
			zap.String("args", parsed.RawArgs),
			zap.Error(err),
		)
		return s.render.RenderError(err), false
	}
	return s.render.RenderTable(s.game.Snapshot()), false
}
