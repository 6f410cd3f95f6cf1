package flowgrid

import (
	"context"
	"fmt"

	"github.com/avkoehl/streamkit/streamerr"
)

// RouteSegment orders the cells of a single labeled segment (mask != 0)
// from its upstream end to its downstream end.
//
// The start is the mask cell with minimum flow accumulation, the end is the
// mask cell with maximum; ties break row-major. The path is produced by
// walking D8 directions from start until the next cell leaves the mask.
//
// Tail-extension: if the end cell's own direction steps to an in-bounds
// cell, that cell is appended even though it lies outside the mask — this
// is what lets two adjacent segments' polylines share their junction
// endpoint when stitched into a vector network. Preserve it; downstream
// vector stitching depends on it.
//
// Returns streamerr.ErrInvalidSegmentGeometry if the walk does not begin at
// start, does not terminate at end, or does not cover every mask cell.
func RouteSegment(ctx context.Context, mask, flowDir, flowAcc *Raster) ([]Cell, error) {
	if err := mask.RequireSameShape(flowDir); err != nil {
		return nil, err
	}
	if err := mask.RequireSameShape(flowAcc); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rows, cols := mask.Shape()
	var cells []Cell
	for _, c := range allCells(rows, cols) {
		if mask.At(c.Row, c.Col) != 0 {
			cells = append(cells, c)
		}
	}
	if len(cells) == 0 {
		return nil, streamerr.ErrDegenerateSegment
	}

	start, end := cells[0], cells[0]
	minAcc, maxAcc := flowAcc.At(start.Row, start.Col), flowAcc.At(end.Row, end.Col)
	for _, c := range cells[1:] {
		v := flowAcc.At(c.Row, c.Col)
		if v < minAcc {
			start, minAcc = c, v
		}
		if v > maxAcc {
			end, maxAcc = c, v
		}
	}

	inMask := func(row, col int) bool {
		return mask.InBounds(row, col) && mask.At(row, col) != 0
	}
	path, err := Walk(ctx, flowDir, start, func(row, col int) bool { return !inMask(row, col) }, nil)
	if err != nil {
		return nil, err
	}

	if len(path) == 0 || path[0] != start {
		return nil, fmt.Errorf("%w: path does not begin at segment start %v", streamerr.ErrInvalidSegmentGeometry, start)
	}
	last := path[len(path)-1]
	if last != end {
		return nil, fmt.Errorf("%w: path ends at %v, want %v", streamerr.ErrInvalidSegmentGeometry, last, end)
	}
	seen := make(map[Cell]bool, len(path))
	for _, c := range path {
		seen[c] = true
	}
	for _, c := range cells {
		if !seen[c] {
			return nil, fmt.Errorf("%w: path does not cover segment mask at %v", streamerr.ErrInvalidSegmentGeometry, c)
		}
	}

	if dir := flowDir.Dir(last.Row, last.Col); dir.IsValid() {
		dr, dc, _ := dir.Step()
		nr, nc := last.Row+dr, last.Col+dc
		if flowDir.InBounds(nr, nc) {
			path = append(path, Cell{Row: nr, Col: nc})
		}
	}

	return path, nil
}
