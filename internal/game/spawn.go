package game

// neighborOffsets lists the eight cells around a detonation, counter-clockwise
// from the east.
var neighborOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Detonate spawns a landmine explosion at (x, y): a flame on the cell itself,
// a flame on each neighboring cell that does not block projectiles, and a pit
// where the mine stood.
func (w *World) Detonate(x, y int) {
	w.Add(NewFlame(x, y, Up))
	for _, off := range neighborOffsets {
		fx, fy := x+off[0]*CellWidth, y+off[1]*CellHeight
		if w.ProjectileBlocked(fx, fy) {
			continue
		}
		w.Add(NewFlame(fx, fy, Up))
	}
	w.Add(NewPit(x, y))
}
