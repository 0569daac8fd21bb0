package model

// AddGlider stamps a 3x3 glider with its bounding box anchored at
// (startX, startY), overwriting the cells underneath it. Positions falling
// outside the grid are ignored.
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.Set(startX+x, startY+y, cell)
		}
	}
}

// AddOscillator stamps a horizontal blinker, the canonical period-2
// oscillator, with its leftmost cell at (startX, startY).
func (g *Grid) AddOscillator(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX+1, startY, true)
	g.Set(startX+2, startY, true)
}
