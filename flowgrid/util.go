package flowgrid

import (
	"context"
	"fmt"
	"sort"

	"github.com/avkoehl/streamkit/streamerr"
)

// ctxCancelled wraps ctx.Err() as streamerr.ErrCancelled, the sentinel every
// long-running operation in this package returns on cancellation.
func ctxCancelled(ctx context.Context) error {
	return fmt.Errorf("%w: %v", streamerr.ErrCancelled, ctx.Err())
}

// sortRowMajor returns cells ordered by row, then column. Sources and pour
// points are always enumerated in this order so repeated runs over the same
// input produce bit-identical output.
func sortRowMajor(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	copy(out, cells)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// allCells enumerates every (row, col) in a Rows x Cols grid, row-major.
func allCells(rows, cols int) []Cell {
	out := make([]Cell, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, Cell{Row: r, Col: c})
		}
	}
	return out
}
