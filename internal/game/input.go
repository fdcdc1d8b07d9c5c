package game

import "encoding/json"

// Command is a single player action.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandMoveUp
	CommandMoveDown
	CommandFire
	CommandPlaceLandmine
	CommandCure
)

func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "left"
	case CommandMoveRight:
		return "right"
	case CommandMoveUp:
		return "up"
	case CommandMoveDown:
		return "down"
	case CommandFire:
		return "fire"
	case CommandPlaceLandmine:
		return "landmine"
	case CommandCure:
		return "cure"
	default:
		return "none"
	}
}

// ParseCommand converts a command name into a Command.
func ParseCommand(s string) (Command, bool) {
	switch s {
	case "left":
		return CommandMoveLeft, true
	case "right":
		return CommandMoveRight, true
	case "up":
		return CommandMoveUp, true
	case "down":
		return CommandMoveDown, true
	case "fire":
		return CommandFire, true
	case "landmine":
		return CommandPlaceLandmine, true
	case "cure":
		return CommandCure, true
	default:
		return CommandNone, false
	}
}

// MarshalJSON serializes Command as a string.
func (c Command) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON deserializes Command from a string.
func (c *Command) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c, _ = ParseCommand(s)
	return nil
}

// InputSource yields at most one pending command per call.
type InputSource interface {
	NextCommand() (Command, bool)
}

// NoInput never yields a command.
type NoInput struct{}

func (NoInput) NextCommand() (Command, bool) { return CommandNone, false }

// Script is an InputSource that replays a fixed list of commands, one per call.
// CommandNone entries are idle ticks.
type Script struct {
	commands []Command
}

// NewScript returns a Script that yields cmds in order.
func NewScript(cmds ...Command) *Script {
	return &Script{commands: cmds}
}

func (s *Script) NextCommand() (Command, bool) {
	if len(s.commands) == 0 {
		return CommandNone, false
	}
	c := s.commands[0]
	s.commands = s.commands[1:]
	if c == CommandNone {
		return CommandNone, false
	}
	return c, true
}
