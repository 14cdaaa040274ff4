package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// player folds event streams into an overlay and, when delay is positive,
// redraws the grid after every event.
type player struct {
	out   io.Writer
	delay time.Duration
	ov    grid.Overlay
}

func (p *player) animated() bool { return p.delay > 0 }

// play drains steps into a fresh overlay. It stops with ctx.Err() when the
// context ends.
func (p *player) play(ctx context.Context, g *grid.Grid, steps iter.Seq[grid.Event]) error {
	p.ov = grid.Overlay{}
	for e := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.ov.Apply(e)
		if !p.animated() {
			continue
		}
		fmt.Fprint(p.out, clearScreen)
		p.frame(g)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.delay):
		}
	}
	return nil
}

// frame prints g under the current overlay.
func (p *player) frame(g *grid.Grid) {
	fmt.Fprintln(p.out, g.Render(p.ov))
}
