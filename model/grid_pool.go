package model

import "sync"

// GridPool recycles generation buffers between steps.
// A GenerationStepper hands back the generation it just replaced, so a long run
// alternates between two buffers instead of allocating one per Advance.
// Grids taken from the pool are never visible to callers of the stepper.
type GridPool struct {
	pool sync.Pool
}

// NewGridPool returns an empty pool; buffers are allocated lazily on the first Get
func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, reset to the given dimensions
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}
