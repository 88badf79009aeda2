package generator

import (
	"context"
	"sync"
	"time"
)

// Pacer slows bulk generation down to stay under the content backend's rate
// limits: every n-th tick waits for delay. A nil Pacer never waits.
type Pacer struct {
	every int
	delay time.Duration

	mu    sync.Mutex
	ticks int
}

func NewPacer(every int, delay time.Duration) *Pacer {
	return &Pacer{every: every, delay: delay}
}

// NewPacer returns the pacer for one bulk run. It only waits when the
// provider asks for pacing.
func (g *Generator) NewPacer() *Pacer {
	if !g.provider.Paced() {
		return nil
	}
	return NewPacer(g.cfg.PaceEvery, g.cfg.PaceDelay)
}

// Tick records one generated item and waits if the item is due for a pause.
// The wait holds no lock and returns early with ctx.Err() when ctx ends.
func (p *Pacer) Tick(ctx context.Context) error {
	if p == nil || p.every <= 0 || p.delay <= 0 {
		return nil
	}

	p.mu.Lock()
	p.ticks++
	due := p.ticks%p.every == 0
	p.mu.Unlock()
	if !due {
		return nil
	}

	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Ticks returns the number of items recorded so far.
func (p *Pacer) Ticks() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ticks
}
