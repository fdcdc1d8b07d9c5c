package game

import "encoding/json"

// Status is the outcome of a tick or a level load.
type Status int

const (
	StatusContinue Status = iota
	StatusPlayerDied
	StatusLevelFinished
	StatusLoadError
	StatusAllLevelsDone
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusPlayerDied:
		return "player_died"
	case StatusLevelFinished:
		return "level_finished"
	case StatusLoadError:
		return "load_error"
	case StatusAllLevelsDone:
		return "all_levels_done"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Status as a string.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Direction as a string.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON deserializes Direction from a string.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "left":
		*d = Left
	case "up":
		*d = Up
	case "down":
		*d = Down
	default:
		*d = Right
	}
	return nil
}

// Offset returns the position dist units away from (x, y) in direction d.
// Up increases y.
func (d Direction) Offset(x, y, dist int) (int, int) {
	switch d {
	case Right:
		return x + dist, y
	case Left:
		return x - dist, y
	case Up:
		return x, y + dist
	case Down:
		return x, y - dist
	}
	return x, y
}
