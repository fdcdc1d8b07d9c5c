package game

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return math.Sqrt(dx*dx + dy*dy)
}

// Overlap reports whether two anchor points are within OverlapRadius of each other.
func Overlap(x1, y1, x2, y2 int) bool {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx+dy*dy <= OverlapRadius*OverlapRadius
}

// BoxIntersect reports whether two cell-sized boxes anchored at their lower-left
// corners intersect for movement purposes. Boxes that sit flush do not intersect.
func BoxIntersect(x1, y1, x2, y2 int) bool {
	return abs(x1-x2) < CellWidth-1 && abs(y1-y2) < CellHeight-1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
