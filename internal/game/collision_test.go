package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		x1, y1   int
		x2, y2   int
		expected float64
	}{
		{"same point", 0, 0, 0, 0, 0},
		{"horizontal", 0, 0, 3, 0, 3},
		{"vertical", 0, 0, 0, 4, 4},
		{"diagonal 3-4-5", 0, 0, 3, 4, 5},
		{"negative delta", 10, 10, 4, 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Distance(tt.x1, tt.y1, tt.x2, tt.y2)
			assert.InDelta(t, tt.expected, result, 0.001)
		})
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   int
		expected bool
	}{
		{"same point", 0, 0, true},
		{"at radius", OverlapRadius, 0, true},
		{"just outside", OverlapRadius + 1, 0, false},
		{"diagonal at radius", 6, 8, true},
		{"diagonal outside", 6, 9, false},
		{"one cell apart", CellWidth, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlap(100, 100, 100+tt.dx, 100+tt.dy))
			assert.Equal(t, tt.expected, Overlap(100+tt.dx, 100+tt.dy, 100, 100), "overlap must be symmetric")
		})
	}
}

func TestBoxIntersect(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   int
		expected bool
	}{
		{"same anchor", 0, 0, true},
		{"overlapping horizontally", CellWidth - 2, 0, true},
		{"flush horizontally", CellWidth - 1, 0, false},
		{"adjacent cell", CellWidth, 0, false},
		{"overlapping vertically", 0, -(CellHeight - 2), true},
		{"flush vertically", 0, CellHeight - 1, false},
		{"diagonal overlap", 8, 8, true},
		{"diagonal apart", 8, CellHeight, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BoxIntersect(50, 50, 50+tt.dx, 50+tt.dy))
			assert.Equal(t, tt.expected, BoxIntersect(50+tt.dx, 50+tt.dy, 50, 50))
		})
	}
}

func TestDirectionOffset(t *testing.T) {
	tests := []struct {
		dir    Direction
		wx, wy int
	}{
		{Right, 14, 10},
		{Left, 6, 10},
		{Up, 10, 14},
		{Down, 10, 6},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			x, y := tt.dir.Offset(10, 10, 4)
			assert.Equal(t, tt.wx, x)
			assert.Equal(t, tt.wy, y)
		})
	}
}
