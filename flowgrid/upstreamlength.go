package flowgrid

import (
	"context"
	"math"
)

// UpstreamLengthRaster computes, per cell, the length of the longest D8
// path reaching it from any headwater (source). Walking downstream from
// each source, cumulative distance is Euclidean in pixel units (1 for an
// axial step, sqrt(2) for a diagonal one); when two paths converge on a
// cell, the larger cumulative distance wins. A walk that enters a cell
// already holding a greater-or-equal distance stops immediately (the
// remaining path was already computed, and can only be shorter or equal via
// this arm) — dominated-path pruning. A walk also stops where the stream
// mask ends, so distances are only ever painted onto stream cells.
//
// The result is scaled by the raster's pixel size to map units.
func UpstreamLengthRaster(ctx context.Context, stream, flowDir *Raster) (*Raster, error) {
	if err := stream.RequireSameShape(flowDir); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	sources, _, _, err := FindStreamNodes(ctx, stream, flowDir)
	if err != nil {
		return nil, err
	}

	rows, cols := stream.Shape()
	const unset = -1.0
	work := NewRaster(rows, cols, stream.Transform(), stream.CRS(), unset)

	for _, src := range sortRowMajor(sources) {
		select {
		case <-ctx.Done():
			return nil, ctxCancelled(ctx)
		default:
		}

		cur := src
		dist := 0.0
		for {
			existing := work.At(cur.Row, cur.Col)
			if existing != unset && existing >= dist {
				break
			}
			work.Set(cur.Row, cur.Col, dist)

			dir := flowDir.Dir(cur.Row, cur.Col)
			if dir.IsSink() {
				break
			}
			dr, dc, _ := dir.Step()
			next := Cell{Row: cur.Row + dr, Col: cur.Col + dc}
			if !flowDir.InBounds(next.Row, next.Col) {
				break
			}
			if stream.At(next.Row, next.Col) == 0 {
				break
			}
			step := 1.0
			if dr != 0 && dc != 0 {
				step = math.Sqrt2
			}
			dist += step
			cur = next
		}
	}

	pixelSize := stream.Transform().Resolution()
	out := NewRaster(rows, cols, stream.Transform(), stream.CRS(), 0)
	for _, c := range allCells(rows, cols) {
		v := work.At(c.Row, c.Col)
		if v == unset {
			continue
		}
		out.Set(c.Row, c.Col, v*pixelSize)
	}

	return out, nil
}
