// Command gridpath builds a grid (a carved maze or a random obstacle field),
// solves it with BFS, A* or both, and prints the result as ASCII.
//
// Settings come from GRIDPATH_* environment variables, a .env file in the
// working directory, and finally command-line flags, later sources winning.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

// clearScreen homes the cursor and clears the terminal between frames.
const clearScreen = "\033[H\033[2J"

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Fatalf("[GRIDPATH] [FATAL] %v", err)
	}
}

// run is main without the process plumbing.
func run(ctx context.Context, args []string, out io.Writer, logger *log.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg, err = parseFlags(cfg, args); err != nil {
		return err
	}

	runID := uuid.New()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Printf("[GRIDPATH] [INFO] run=%s size=%dx%d maze=%v algorithm=%s seed=%d",
		runID, cfg.Rows, cfg.Cols, cfg.Maze, cfg.Algorithm, cfg.Seed)

	p := &player{out: out, delay: cfg.Delay}
	g, err := buildGrid(ctx, cfg, p)
	if err != nil {
		return err
	}
	if !cfg.Maze && !g.Connected() {
		logger.Printf("[GRIDPATH] [WARN] run=%s goal is walled off; searches will report no path", runID)
	}

	if cfg.Algorithm == config.AlgorithmBoth {
		return compare(ctx, g, out, logger, runID)
	}
	alg, err := search.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	return solve(ctx, g, alg, p, logger, runID)
}

// parseFlags overrides cfg with any flags present in args.
func parseFlags(cfg config.Config, args []string) (config.Config, error) {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "Grid height (odd for mazes)")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "Grid width (odd for mazes)")
	fs.StringVar(&cfg.Algorithm, "algorithm", cfg.Algorithm, "Search: bfs|astar|both")
	fs.BoolVar(&cfg.Maze, "maze", cfg.Maze, "Carve a perfect maze instead of scattering walls")
	fs.Float64Var(&cfg.Density, "density", cfg.Density, "Wall probability when -maze=false")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; 0 picks one from the clock")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "Pause between animation frames; 0 prints only the result")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// buildGrid returns a carved maze with corners (1,1) and (rows-2, cols-2),
// or a scattered field with corners (0,0) and (rows-1, cols-1).
func buildGrid(ctx context.Context, cfg config.Config, p *player) (*grid.Grid, error) {
	if !cfg.Maze {
		g, err := grid.New(cfg.Rows, cfg.Cols,
			grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: cfg.Rows - 1, Col: cfg.Cols - 1})
		if err != nil {
			return nil, err
		}
		return g, maze.Scatter(g, cfg.Density, maze.WithSeed(cfg.Seed))
	}

	g, err := grid.New(cfg.Rows, cfg.Cols,
		grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: cfg.Rows - 2, Col: cfg.Cols - 2})
	if err != nil {
		return nil, err
	}
	opts := []maze.Option{maze.WithSeed(cfg.Seed)}
	if p.animated() {
		opts = append(opts, maze.WithHeadTracking())
	}
	steps, err := maze.Generate(g, g.Start(), opts...)
	if err != nil {
		return nil, err
	}
	if err = p.play(ctx, g, steps); err != nil {
		return nil, err
	}
	return g, nil
}

// solve runs one algorithm, animating it when a delay is set.
func solve(ctx context.Context, g *grid.Grid, alg search.Algorithm, p *player, logger *log.Logger, runID uuid.UUID) error {
	s, err := search.New(g, alg)
	if err != nil {
		return err
	}
	start := time.Now()
	if err = p.play(ctx, g, s.Steps()); err != nil {
		return err
	}
	res, _ := s.Result()
	p.frame(g)
	report(p.out, res)
	logger.Printf("[GRIDPATH] [INFO] run=%s %s finished in %v", runID, alg, time.Since(start))
	return nil
}

// compare runs both algorithms concurrently and prints each final path.
func compare(ctx context.Context, g *grid.Grid, out io.Writer, logger *log.Logger, runID uuid.UUID) error {
	start := time.Now()
	bfs, astar, err := search.Compare(ctx, g)
	if err != nil {
		return err
	}
	for _, res := range []search.Result{bfs, astar} {
		ov := grid.Overlay{}
		for _, at := range res.Path {
			ov.Apply(grid.Event{At: at, State: grid.StatePath})
		}
		fmt.Fprintf(out, "== %s ==\n%s\n", res.Algorithm, g.Render(ov))
		report(out, res)
	}
	logger.Printf("[GRIDPATH] [INFO] run=%s comparison finished in %v", runID, time.Since(start))
	return nil
}

func report(out io.Writer, res search.Result) {
	st := res.Stats()
	if !res.Found {
		fmt.Fprintf(out, "%s: no path found (nodes visited: %d)\n", res.Algorithm, st.NodesVisited)
		return
	}
	fmt.Fprintf(out, "%s: nodes visited: %d, path length: %d\n", res.Algorithm, st.NodesVisited, st.PathLength)
}
