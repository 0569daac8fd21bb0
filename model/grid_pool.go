package model

import "sync"

// GridPool recycles Grid storage so hot paths, like the per-tick snapshot in
// AdvanceWithPool, do not allocate a fresh board every frame.
type GridPool struct {
	pool sync.Pool
}

// NewGridPool returns an empty pool.
func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool sized to rows x cols with every cell
// dead, reusing recycled storage when it fits. It fails with ErrNoMemory
// when the requested storage cannot be satisfied.
func (p *GridPool) Get(rows, cols int) (*Grid, error) {
	g := p.pool.Get().(*Grid)
	if err := g.Reset(rows, cols); err != nil {
		p.pool.Put(g)
		return nil, err
	}
	return g, nil
}

// Put returns a grid to the pool, clearing its cells first. Putting nil is a
// no-op.
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	g.Clear()
	p.pool.Put(g)
}
