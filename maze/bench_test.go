package maze_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
)

// BenchmarkNew carves a 201×201 maze per iteration.
// Complexity: O(W×H)
func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := maze.New(201, 201, maze.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkVerify checks perfection of a fixed 201×201 maze.
func BenchmarkVerify(b *testing.B) {
	g, err := maze.New(201, 201, maze.WithSeed(7))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = maze.Verify(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkScatter re-rolls a 300×300 obstacle field.
func BenchmarkScatter(b *testing.B) {
	g, _ := grid.New(300, 300, grid.Coord{}, grid.Coord{Row: 299, Col: 299})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = maze.Scatter(g, 0.3, maze.WithSeed(int64(i+1)))
	}
}
