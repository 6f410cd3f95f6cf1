package flowgrid

import (
	"context"
	"fmt"

	"github.com/avkoehl/streamkit/streamerr"
)

// StopFunc is evaluated against the *next* cell a walk would step onto.
// Returning true terminates the walk before that cell is visited. Callers
// use this to fold in state the walker itself doesn't know about — "stop if
// already marked in the output raster", "stop if this leaves the segment
// mask", "stop if this is a confluence" — so one walker serves every
// grid-walking component.
type StopFunc func(row, col int) bool

// VisitFunc is called once per cell actually visited, in walk order. It may
// mutate caller state (painting an output raster, accumulating a distance)
// but must not panic; Walk has no recovery.
type VisitFunc func(row, col int)

// Walk follows D8 directions from start until the first of:
//
//   - the current cell's direction is a sink code,
//   - the next cell is out of bounds,
//   - stop(next) returns true,
//   - the next cell has already been visited in this walk (loop guard).
//
// It returns the ordered list of cells visited, start inclusive. Stream
// tracing, link labeling, and segment routing are Walk plus a specific
// stop/visit pair; node classification and the upstream-length raster run
// their own loops, and subbasins walk a core.Graph with bfs.
//
// Complexity: O(L) time and memory in the length of the path produced.
func Walk(ctx context.Context, flowDir *Raster, start Cell, stop StopFunc, visit VisitFunc) ([]Cell, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	visited := make(map[Cell]bool)
	path := make([]Cell, 0, 16)
	cur := start

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", streamerr.ErrCancelled, ctx.Err())
		default:
		}

		if visited[cur] {
			break
		}
		visited[cur] = true
		path = append(path, cur)
		if visit != nil {
			visit(cur.Row, cur.Col)
		}

		dir := flowDir.Dir(cur.Row, cur.Col)
		if dir.IsSink() {
			break
		}
		dr, dc, _ := dir.Step()
		next := Cell{Row: cur.Row + dr, Col: cur.Col + dc}

		if !flowDir.InBounds(next.Row, next.Col) {
			break
		}
		if stop != nil && stop(next.Row, next.Col) {
			break
		}
		if visited[next] {
			break
		}
		cur = next
	}

	return path, nil
}
