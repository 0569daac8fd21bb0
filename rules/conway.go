package rules

/*
NextCellState applies Conway's Game of Life rules to determine the next state
of a single cell from its current state and its live-neighbor count.

An alive cell survives with 2 or 3 live neighbors. A dead cell comes alive
with exactly 3 live neighbors (reproduction). Every other combination leaves
the cell dead: isolation below 2, overcrowding above 3.
*/
func NextCellState(alive bool, liveNeighbors int) bool {
	survive := alive && (liveNeighbors == 2 || liveNeighbors == 3)
	reproduce := !alive && liveNeighbors == 3
	return survive || reproduce
}
