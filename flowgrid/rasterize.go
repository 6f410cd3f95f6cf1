package flowgrid

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// ReferencePoint is a world-coordinate vertex of a reference flowline.
type ReferencePoint struct {
	X, Y float64
}

// ReferenceLine is a reference flowline given as an ordered sequence of
// world-coordinate vertices, upstream endpoint first.
type ReferenceLine []ReferencePoint

// Pixel converts a world coordinate to the (row, col) it falls in under t,
// via t's inverse affine transform. ok is false when t is singular (A*E ==
// B*D), which never happens for a well-formed raster transform.
func (t Transform) Pixel(x, y float64) (row, col int, ok bool) {
	det := t.A*t.E - t.B*t.D
	if det == 0 {
		return 0, 0, false
	}
	dx, dy := x-t.C, y-t.F
	fc := (t.E*dx - t.B*dy) / det
	fr := (t.A*dy - t.D*dx) / det
	return int(math.Round(fr)), int(math.Round(fc)), true
}

// ChannelHeads returns each line's upstream endpoint, filtered to lines
// whose start coordinate is not any other line's end coordinate (in-degree
// 0 in the endpoint-to-endpoint graph) — a reference network's channel
// heads. Order is deterministic: sorted by (X, Y).
func ChannelHeads(lines []ReferenceLine) []ReferencePoint {
	endKey := func(p ReferencePoint) string { return fmt.Sprintf("%.9g,%.9g", p.X, p.Y) }

	inDegree := make(map[string]int)
	starts := make(map[string]ReferencePoint)
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		start, end := line[0], line[len(line)-1]
		starts[endKey(start)] = start
		inDegree[endKey(start)] += 0
		inDegree[endKey(end)]++
	}

	var heads []ReferencePoint
	for key, start := range starts {
		if inDegree[key] == 0 {
			heads = append(heads, start)
		}
	}
	sort.Slice(heads, func(i, j int) bool {
		if heads[i].X != heads[j].X {
			return heads[i].X < heads[j].X
		}
		return heads[i].Y < heads[j].Y
	})
	return heads
}

// RasterizeReferenceLines traces and links a stream network seeded from a
// reference vector flowline network's channel heads, on an independently
// derived D8 flow-direction raster: each head is snapped to a pixel via the
// inverse transform, Components C and E run from those seeds, and segments
// shorter than two pixels are dropped before the surviving segments are
// relabeled to consecutive positive integers.
//
// This lets a reference network (e.g. NHD) be conflated onto a DEM's own
// flow-direction field instead of trusting the reference geometry's pixel
// alignment directly.
func RasterizeReferenceLines(ctx context.Context, lines []ReferenceLine, flowDir *Raster) (*Raster, error) {
	rows, cols := flowDir.Shape()
	heads := ChannelHeads(lines)

	seen := make(map[Cell]bool)
	var seeds []Cell
	for _, h := range heads {
		row, col, ok := flowDir.Transform().Pixel(h.X, h.Y)
		if !ok || !flowDir.InBounds(row, col) {
			continue
		}
		c := Cell{Row: row, Col: col}
		if !seen[c] {
			seen[c] = true
			seeds = append(seeds, c)
		}
	}
	seeds = sortRowMajor(seeds)

	stream, err := TraceStreams(ctx, flowDir, seeds)
	if err != nil {
		return nil, err
	}
	linked, err := LinkStreams(ctx, stream, flowDir)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int)
	for _, c := range allCells(rows, cols) {
		if id := linked.Int(c.Row, c.Col); id != 0 {
			counts[id]++
		}
	}
	for id, n := range counts {
		if n < 2 {
			for _, c := range allCells(rows, cols) {
				if linked.Int(c.Row, c.Col) == id {
					linked.Set(c.Row, c.Col, 0)
				}
			}
		}
	}

	ids := make([]int, 0, len(counts))
	for id, n := range counts {
		if n >= 2 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	relabel := make(map[int]int, len(ids))
	for i, id := range ids {
		relabel[id] = i + 1
	}
	for _, c := range allCells(rows, cols) {
		if id := linked.Int(c.Row, c.Col); id != 0 {
			linked.Set(c.Row, c.Col, float64(relabel[id]))
		}
	}

	return linked, nil
}
