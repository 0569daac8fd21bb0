package model

import (
	"crypto/md5"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/DevBlocky/conway-gol/rules"
)

// Engine failure modes. Fallible Grid operations return one of these,
// usually wrapped with call-site context; match with errors.Is.
var (
	// ErrNotInitialized reports an operation that needs cell storage being
	// invoked on a Grid that has none.
	ErrNotInitialized = errors.New("grid not initialized")

	// ErrNoMemory reports a cell or render allocation that cannot be
	// satisfied.
	ErrNoMemory = errors.New("allocation cannot be satisfied")
)

// neighborOffsets holds the relative (x, y) positions of the 8 cells in a
// Moore neighborhood.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid represents the game board: a fixed-size matrix of live/dead cells in
// row-major order (index = y*cols + x). A Grid either owns storage of exactly
// rows*cols cells or no storage at all; there is no partial state. Storage is
// never shared between Grid values.
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// NewGrid creates an initialized grid with the specified dimensions and every
// cell dead. It fails with ErrNoMemory when the cell storage cannot be
// satisfied.
func NewGrid(rows, cols int) (*Grid, error) {
	g := &Grid{}
	if err := g.Reset(rows, cols); err != nil {
		return nil, err
	}
	return g, nil
}

// storageSize reports the cell count for a rows x cols board and whether that
// allocation is satisfiable at all.
func storageSize(rows, cols int) (int, bool) {
	if rows < 0 || cols < 0 {
		return 0, false
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return 0, false
	}
	return rows * cols, true
}

// Reset initializes the grid in place to rows x cols with every cell dead,
// reusing existing storage capacity when it can. On failure the grid keeps
// its previous state.
func (g *Grid) Reset(rows, cols int) error {
	n, ok := storageSize(rows, cols)
	if !ok {
		return errors.Wrapf(ErrNoMemory, "[Reset] cannot size %dx%d cell storage", rows, cols)
	}

	if g.cells != nil && cap(g.cells) >= n {
		g.cells = g.cells[:n]
		for i := range g.cells {
			g.cells[i] = false
		}
	} else {
		g.cells = make([]bool, n)
	}
	g.rows = rows
	g.cols = cols
	return nil
}

// Release drops the cell storage and resets the grid to the uninitialized
// state. Releasing an uninitialized grid is a no-op, so a second call is
// always safe.
func (g *Grid) Release() {
	g.cells = nil
	g.rows = 0
	g.cols = 0
}

// Initialized reports whether the grid currently owns cell storage.
func (g *Grid) Initialized() bool {
	return g.cells != nil
}

// GetRows returns the number of rows in the grid.
func (g *Grid) GetRows() int {
	return g.rows
}

// GetCols returns the number of columns in the grid.
func (g *Grid) GetCols() int {
	return g.cols
}

// Cells returns a copy of the cell storage in row-major order, or nil when
// the grid is uninitialized. Handing out a copy keeps the grid's own storage
// private.
func (g *Grid) Cells() []bool {
	if g.cells == nil {
		return nil
	}
	out := make([]bool, len(g.cells))
	copy(out, g.cells)
	return out
}

// Duplicate produces a new grid with the same dimensions and an independent
// deep copy of the cell storage; mutating one never affects the other.
// Duplicating an uninitialized grid yields another uninitialized grid with
// the same dimension metadata, which is a valid outcome rather than an error.
func (g *Grid) Duplicate() (*Grid, error) {
	dup := &Grid{rows: g.rows, cols: g.cols}
	if g.cells == nil {
		return dup, nil
	}
	dup.cells = make([]bool, len(g.cells))
	copy(dup.cells, g.cells)
	return dup, nil
}

// Set sets a cell to alive (true) or dead (false). Positions outside the
// grid are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if g.cells == nil || x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return
	}
	g.cells[y*g.cols+x] = alive
}

// Get returns the state of a cell. Positions outside the grid read as dead.
func (g *Grid) Get(x, y int) bool {
	if g.cells == nil || x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return false
	}
	return g.cells[y*g.cols+x]
}

// Clear sets every cell dead while keeping the dimensions.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Randomize sets every cell independently to alive or dead with equal
// probability drawn from rng. The generator is caller-seeded, so a fixed
// seed reproduces the exact same board. rng must not be nil.
func (g *Grid) Randomize(rng *rand.Rand) error {
	if g.cells == nil {
		return errors.Wrap(ErrNotInitialized, "[Randomize] no cell storage")
	}
	for i := range g.cells {
		g.cells[i] = rng.IntN(2) == 1
	}
	return nil
}

// CountLiveNeighbors returns how many of the up-to-8 Moore neighbors of
// (x, y) are alive. Neighbor positions falling outside the grid are skipped,
// never wrapped, so edge and corner cells simply have fewer neighbors.
func (g *Grid) CountLiveNeighbors(x, y int) (int, error) {
	if g.cells == nil {
		return 0, errors.Wrap(ErrNotInitialized, "[CountLiveNeighbors] no cell storage")
	}

	count := 0
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || nx >= g.cols || ny < 0 || ny >= g.rows {
			continue
		}
		if g.cells[ny*g.cols+nx] {
			count++
		}
	}
	return count, nil
}

// Advance computes the next generation in place. Every cell's next state is
// derived from a snapshot of the generation being replaced, so no cell ever
// observes a neighbor's already-updated state within the same tick.
func (g *Grid) Advance() error {
	return g.AdvanceWithPool(nil)
}

// AdvanceWithPool is Advance with the snapshot borrowed from pool instead of
// freshly allocated; pool may be nil. The snapshot is returned or released on
// every path, success or failure.
func (g *Grid) AdvanceWithPool(pool *GridPool) error {
	if g.cells == nil {
		return errors.Wrap(ErrNotInitialized, "[AdvanceWithPool] no cell storage")
	}

	snap, err := g.snapshot(pool)
	if err != nil {
		return errors.Wrap(err, "[AdvanceWithPool] failed to snapshot current generation")
	}
	defer func() {
		if pool != nil {
			pool.Put(snap)
		} else {
			snap.Release()
		}
	}()

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			liveNeighbors, err := snap.CountLiveNeighbors(x, y)
			if err != nil {
				return errors.Wrapf(err, "[AdvanceWithPool] failed to count neighbors of (%d,%d)", x, y)
			}
			idx := y*g.cols + x
			g.cells[idx] = rules.NextCellState(snap.cells[idx], liveNeighbors)
		}
	}
	return nil
}

// snapshot produces a deep copy of the current generation to read from,
// loaned from pool when one is provided.
func (g *Grid) snapshot(pool *GridPool) (*Grid, error) {
	if pool == nil {
		return g.Duplicate()
	}
	snap, err := pool.Get(g.rows, g.cols)
	if err != nil {
		return nil, err
	}
	copy(snap.cells, g.cells)
	return snap, nil
}

// CountLivingCells returns the total number of living cells.
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 fingerprint of the current cell pattern. The
// driver compares consecutive fingerprints of the same grid to notice a
// board that has gone static between frames.
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for _, alive := range g.cells {
		if alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
