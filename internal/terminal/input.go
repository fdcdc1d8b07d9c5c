package terminal

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/zombiedash/internal/game"
)

// MapKey translates a key press. quit is set for q, Esc and Ctrl-C; cmd is
// CommandNone for keys with no meaning.
func MapKey(ev *tcell.EventKey) (cmd game.Command, quit bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.CommandMoveUp, false
	case tcell.KeyDown:
		return game.CommandMoveDown, false
	case tcell.KeyLeft:
		return game.CommandMoveLeft, false
	case tcell.KeyRight:
		return game.CommandMoveRight, false
	case tcell.KeyTab:
		return game.CommandPlaceLandmine, false
	case tcell.KeyEnter:
		return game.CommandCure, false
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CommandNone, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.CommandMoveUp, false
		case 's', 'S':
			return game.CommandMoveDown, false
		case 'a', 'A':
			return game.CommandMoveLeft, false
		case 'd', 'D':
			return game.CommandMoveRight, false
		case ' ':
			return game.CommandFire, false
		case 'q', 'Q':
			return game.CommandNone, true
		}
	}
	return game.CommandNone, false
}

// ReadKeys polls screen until the player quits, an interrupt event arrives or
// the screen is finalized, handing each mapped command to enqueue. It reports
// whether the player quit.
func ReadKeys(screen tcell.Screen, enqueue func(game.Command) error, logger *slog.Logger) bool {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil, *tcell.EventInterrupt:
			return false
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			cmd, quit := MapKey(ev)
			if quit {
				return true
			}
			if cmd == game.CommandNone {
				continue
			}
			if err := enqueue(cmd); err != nil {
				logger.Debug("command dropped", "cmd", cmd.String(), "error", err)
			}
		}
	}
}

// WaitKey blocks until any key is pressed or the screen is finalized.
func WaitKey(screen tcell.Screen) {
	for {
		switch screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		}
	}
}
