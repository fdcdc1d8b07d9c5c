// Package terminal draws sessions on a tcell screen and reads keyboard input.
package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/zombiedash/internal/game"
	"github.com/ugaemi/zombiedash/internal/level"
	"github.com/ugaemi/zombiedash/internal/record"
)

// Each grid cell is drawn two columns wide to keep the board roughly square.
const cellCols = 2

// Screen rows below the board.
const (
	statusRow = level.Height
	eventRow  = level.Height + 1
	helpRow   = level.Height + 3
)

const helpText = "arrows/wasd move  space fire  tab mine  enter cure  q quit"

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleFloor   = styleDefault.Foreground(tcell.ColorDarkGray)
	styleStatus  = styleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleEvent   = styleDefault.Foreground(tcell.ColorYellow)
	styleHelp    = styleDefault.Foreground(tcell.ColorGray)
	styleBanner  = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed).Bold(true)
)

type glyph struct {
	r     rune
	style tcell.Style
	layer int
}

// Higher layers draw over lower ones when entities share a cell.
var glyphs = map[game.Kind]glyph{
	game.KindWall:           {'#', styleDefault.Foreground(tcell.ColorSilver), 0},
	game.KindExit:           {'X', styleDefault.Foreground(tcell.ColorLime).Bold(true), 0},
	game.KindPit:            {'O', styleDefault.Foreground(tcell.ColorPurple), 0},
	game.KindVaccineGoodie:  {'V', styleDefault.Foreground(tcell.ColorSkyblue), 1},
	game.KindGasCanGoodie:   {'G', styleDefault.Foreground(tcell.ColorOrange), 1},
	game.KindLandmineGoodie: {'L', styleDefault.Foreground(tcell.ColorOlive), 1},
	game.KindLandmine:       {'*', styleDefault.Foreground(tcell.ColorRed), 1},
	game.KindCitizen:        {'C', styleDefault.Foreground(tcell.ColorWhite).Bold(true), 2},
	game.KindDumbZombie:     {'D', styleDefault.Foreground(tcell.ColorGreen), 2},
	game.KindSmartZombie:    {'S', styleDefault.Foreground(tcell.ColorSpringGreen).Bold(true), 2},
	game.KindFlame:          {'^', styleDefault.Foreground(tcell.ColorOrangeRed), 3},
	game.KindVomit:          {'~', styleDefault.Foreground(tcell.ColorYellowGreen), 3},
	game.KindPlayer:         {'@', styleDefault.Foreground(tcell.ColorYellow).Bold(true), 4},
}

const maxLayer = 4

// Renderer draws snapshots onto a screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CellPosition maps a world anchor to the board cell it mostly covers,
// with row 0 at the top of the screen.
func CellPosition(x, y int) (col, row int) {
	cx := clamp((x+game.CellWidth/2)/game.CellWidth, 0, level.Width-1)
	cy := clamp((y+game.CellHeight/2)/game.CellHeight, 0, level.Height-1)
	return cx, level.Height - 1 - cy
}

// Draw renders one frame: the board, the status line and the last tick's events.
func (r *Renderer) Draw(snap game.Snapshot) {
	r.screen.Clear()

	for row := 0; row < level.Height; row++ {
		for col := 0; col < level.Width; col++ {
			r.screen.SetContent(col*cellCols, row, '.', nil, styleFloor)
		}
	}
	for layer := 0; layer <= maxLayer; layer++ {
		for _, e := range snap.Entities {
			g, ok := glyphs[e.Kind]
			if !ok || g.layer != layer {
				continue
			}
			col, row := CellPosition(e.X, e.Y)
			r.screen.SetContent(col*cellCols, row, g.r, nil, g.style)
		}
	}

	drawText(r.screen, 0, statusRow, snap.Status, styleStatus)
	if len(snap.Events) > 0 {
		drawText(r.screen, 0, eventRow, eventLine(snap.Events), styleEvent)
	}
	drawText(r.screen, 0, helpRow, helpText, styleHelp)
	r.screen.Show()
}

// DrawGameOver shows the final result and the high score table.
func (r *Renderer) DrawGameOver(rec *record.Record, top []*record.Record) {
	r.screen.Clear()

	drawText(r.screen, 0, 0, fmt.Sprintf(" GAME OVER: %s ", outcomeText(rec.Outcome)), styleBanner)
	drawText(r.screen, 0, 2, fmt.Sprintf("%s scored %d on level %d", rec.Nickname, rec.Score, rec.Level), styleStatus)

	if len(top) > 0 {
		drawText(r.screen, 0, 4, "High scores", styleEvent)
		for i, t := range top {
			line := fmt.Sprintf("%2d. %-12s %7d  L%d", i+1, t.Nickname, t.Score, t.Level)
			style := styleDefault
			if t.ID == rec.ID {
				style = styleDefault.Bold(true)
			}
			drawText(r.screen, 0, 5+i, line, style)
		}
	}
	drawText(r.screen, 0, 6+len(top), "press any key", styleHelp)
	r.screen.Show()
}

func outcomeText(o record.Outcome) string {
	switch o {
	case record.OutcomeAllLevelsDone:
		return "all levels cleared"
	case record.OutcomeLoadError:
		return "level failed to load"
	case record.OutcomeAbandoned:
		return "abandoned"
	default:
		return "out of lives"
	}
}

func eventLine(events []game.Event) string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.String()
	}
	return strings.Join(names, " ")
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
