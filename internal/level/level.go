package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Level dimensions (cells)
const (
	Width  = 16
	Height = 16
)

var (
	// ErrNotFound is returned when the level file does not exist.
	ErrNotFound = errors.New("level file not found")
	// ErrBadFormat is returned when the level file cannot be parsed.
	ErrBadFormat = errors.New("level file improperly formatted")
)

type Cell int

const (
	Empty Cell = iota
	Wall
	Pit
	Exit
	Player
	Citizen
	DumbZombie
	SmartZombie
	VaccineGoodie
	GasCanGoodie
	LandmineGoodie
)

var cellSymbols = map[rune]Cell{
	'.': Empty,
	' ': Empty,
	'#': Wall,
	'O': Pit,
	'X': Exit,
	'@': Player,
	'C': Citizen,
	'D': DumbZombie,
	'S': SmartZombie,
	'V': VaccineGoodie,
	'G': GasCanGoodie,
	'L': LandmineGoodie,
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Pit:
		return "pit"
	case Exit:
		return "exit"
	case Player:
		return "player"
	case Citizen:
		return "citizen"
	case DumbZombie:
		return "dumb_zombie"
	case SmartZombie:
		return "smart_zombie"
	case VaccineGoodie:
		return "vaccine_goodie"
	case GasCanGoodie:
		return "gas_can_goodie"
	case LandmineGoodie:
		return "landmine_goodie"
	default:
		return "unknown"
	}
}

// Grid is a level's cell layout. (0, 0) is the bottom-left cell.
type Grid struct {
	cells [Height][Width]Cell
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// At returns the cell at column x, row y. Out-of-range coordinates are Empty.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Empty
	}
	return g.cells[y][x]
}

// Set places a cell at column x, row y. Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	g.cells[y][x] = c
}

// Parse reads a level from r. The first line is the top row.
func Parse(r io.Reader) (*Grid, error) {
	g := NewGrid()
	scanner := bufio.NewScanner(r)

	row := 0
	players := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if row >= Height {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return nil, fmt.Errorf("%w: more than %d rows", ErrBadFormat, Height)
		}

		runes := []rune(line)
		if len(runes) != Width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadFormat, row+1, len(runes), Width)
		}

		y := Height - 1 - row
		for x, sym := range runes {
			c, ok := cellSymbols[sym]
			if !ok {
				return nil, fmt.Errorf("%w: unknown symbol %q at row %d column %d", ErrBadFormat, sym, row+1, x+1)
			}
			if isBorder(x, y) && c != Wall {
				return nil, fmt.Errorf("%w: border cell at row %d column %d is not a wall", ErrBadFormat, row+1, x+1)
			}
			if c == Player {
				players++
			}
			g.cells[y][x] = c
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}

	if row != Height {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrBadFormat, row, Height)
	}
	if players != 1 {
		return nil, fmt.Errorf("%w: %d player cells, want 1", ErrBadFormat, players)
	}
	return g, nil
}

func isBorder(x, y int) bool {
	return x == 0 || y == 0 || x == Width-1 || y == Height-1
}

// FileName returns the file name for level n, e.g. "level01.txt".
func FileName(n int) string {
	return fmt.Sprintf("level%02d.txt", n)
}

// Loader reads numbered level files from a directory.
type Loader struct {
	Dir string
}

// Load reads and parses level n.
func (l Loader) Load(n int) (*Grid, error) {
	path := filepath.Join(l.Dir, FileName(n))
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
