package flowgrid

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/avkoehl/streamkit/bfs"
	"github.com/avkoehl/streamkit/core"
	"github.com/avkoehl/streamkit/dirmap"
)

// PourPoint is one row of the pour-point table: a segment's downstream-most
// cell and the flow accumulation observed there.
type PourPoint struct {
	Cell             Cell
	SegmentID        int
	FlowAccumulation float64
}

// neighborCodes lists the eight D8 codes in a fixed order, used to probe
// which of a cell's eight neighbors flow into it.
var neighborCodes = []dirmap.Direction{
	dirmap.North, dirmap.Northeast, dirmap.East, dirmap.Southeast,
	dirmap.South, dirmap.Southwest, dirmap.West, dirmap.Northwest,
}

// PourPoints selects, for every unique positive segment ID in linkLabels,
// the labeled cell with maximum flow accumulation, then sorts the result by
// flow accumulation descending (ties broken row-major) so catchments are
// painted outer-first.
func PourPoints(linkLabels, flowAcc *Raster) []PourPoint {
	best := make(map[int]PourPoint)
	rows, cols := linkLabels.Shape()
	for _, c := range allCells(rows, cols) {
		id := linkLabels.Int(c.Row, c.Col)
		if id <= 0 {
			continue
		}
		acc := flowAcc.At(c.Row, c.Col)
		cur, ok := best[id]
		if !ok || acc > cur.FlowAccumulation {
			best[id] = PourPoint{Cell: c, SegmentID: id, FlowAccumulation: acc}
		}
	}
	out := make([]PourPoint, 0, len(best))
	for _, pp := range best {
		out = append(out, pp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FlowAccumulation != out[j].FlowAccumulation {
			return out[i].FlowAccumulation > out[j].FlowAccumulation
		}
		if out[i].Cell.Row != out[j].Cell.Row {
			return out[i].Cell.Row < out[j].Cell.Row
		}
		return out[i].Cell.Col < out[j].Cell.Col
	})
	return out
}

// reverseNeighbors returns the neighbors of v that flow directly into v,
// found by checking each of the eight neighbor positions against the D8
// code that would land exactly on v.
func reverseNeighbors(v Cell, flowDir *Raster) []Cell {
	var ups []Cell
	for _, code := range neighborCodes {
		dr, dc, _ := code.Step()
		n := Cell{Row: v.Row - dr, Col: v.Col - dc}
		if !flowDir.InBounds(n.Row, n.Col) {
			continue
		}
		if flowDir.Dir(n.Row, n.Col) == code {
			ups = append(ups, n)
		}
	}
	return ups
}

// cellNodeID encodes a grid cell as a core.Graph vertex ID, "row,col".
func cellNodeID(c Cell) string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// parseCellNodeID decodes a vertex ID produced by cellNodeID back into a Cell.
func parseCellNodeID(id string) (Cell, error) {
	row, col, ok := strings.Cut(id, ",")
	if !ok {
		return Cell{}, fmt.Errorf("flowgrid: malformed cell node id %q", id)
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return Cell{}, fmt.Errorf("flowgrid: malformed cell node id %q: %w", id, err)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return Cell{}, fmt.Errorf("flowgrid: malformed cell node id %q: %w", id, err)
	}
	return Cell{Row: r, Col: c}, nil
}

// reverseFlowGraph builds a directed core.Graph whose edge v->u exists for
// every cell u that flows directly into cell v under D8. Walking this graph
// with a breadth-first search rooted at a pour point visits exactly that
// pour point's contributing area, one edge per reverse-D8 step.
func reverseFlowGraph(flowDir *Raster) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true))
	rows, cols := flowDir.Shape()
	for _, v := range allCells(rows, cols) {
		vid := cellNodeID(v)
		if err := g.AddVertex(vid); err != nil {
			return nil, err
		}
		for _, up := range reverseNeighbors(v, flowDir) {
			if _, err := g.AddEdge(vid, cellNodeID(up), 0); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// DelineateSubbasins computes, for each segment's pour point, its full
// contributing area by a reverse-D8 breadth-first search over the cell
// graph built by reverseFlowGraph, and paints those cells with the segment
// ID. Pour points are processed outer-first (largest flow accumulation,
// i.e. farthest downstream), so an upstream subbasin's paint overwrites its
// containing downstream basin — every cell ends up labeled with the
// innermost (nearest downstream) subbasin containing it.
func DelineateSubbasins(ctx context.Context, linkLabels, flowDir, flowAcc *Raster) (*Raster, []PourPoint, error) {
	if err := linkLabels.RequireSameShape(flowDir); err != nil {
		return nil, nil, err
	}
	if err := linkLabels.RequireSameShape(flowAcc); err != nil {
		return nil, nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	pourPoints := PourPoints(linkLabels, flowAcc)
	rows, cols := linkLabels.Shape()
	out := NewRaster(rows, cols, linkLabels.Transform(), linkLabels.CRS(), 0)

	graph, err := reverseFlowGraph(flowDir)
	if err != nil {
		return nil, nil, err
	}

	for _, pp := range pourPoints {
		select {
		case <-ctx.Done():
			return nil, nil, ctxCancelled(ctx)
		default:
		}

		res, err := bfs.BFS(graph, cellNodeID(pp.Cell), bfs.WithContext(ctx))
		if err != nil {
			return nil, nil, fmt.Errorf("flowgrid: subbasin walk from pour point %v: %w", pp.Cell, err)
		}
		for _, id := range res.Order {
			c, err := parseCellNodeID(id)
			if err != nil {
				return nil, nil, err
			}
			out.Set(c.Row, c.Col, float64(pp.SegmentID))
		}
	}

	return out, pourPoints, nil
}
