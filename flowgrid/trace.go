package flowgrid

import "context"

// TraceStreams marks every cell reachable from seeds by following D8
// directions, stopping at sinks, out-of-bounds, or a cell already marked.
// The output is a binary raster: 1 where reachable, 0 elsewhere.
//
// Tracing the same seeds twice yields an identical output; the order seeds
// are processed in does not affect the resulting set, only the work done
// per seed (a seed landing on an already-marked cell terminates early), so
// seeds are still sorted row-major for deterministic traversal cost and
// logging.
func TraceStreams(ctx context.Context, flowDir *Raster, seeds []Cell) (*Raster, error) {
	out := NewRaster(flowDir.Rows, flowDir.Cols, flowDir.Transform(), flowDir.CRS(), 0)
	for _, seed := range sortRowMajor(seeds) {
		_, err := Walk(ctx, flowDir, seed,
			func(row, col int) bool { return out.At(row, col) != 0 },
			func(row, col int) { out.Set(row, col, 1) },
		)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
