package flowgrid

import "context"

// FindStreamNodes classifies every stream cell (stream != 0) into sources
// (zero inflows), confluences (two or more inflows), and outlets (a sink
// direction code). An isolated stream cell is both a source and an outlet.
// All three lists are returned row-major.
func FindStreamNodes(ctx context.Context, stream, flowDir *Raster) (sources, confluences, outlets []Cell, err error) {
	if err = stream.RequireSameShape(flowDir); err != nil {
		return nil, nil, nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rows, cols := stream.Shape()
	inflow := make([]int, rows*cols)

	for _, c := range allCells(rows, cols) {
		select {
		case <-ctx.Done():
			return nil, nil, nil, ctxCancelled(ctx)
		default:
		}
		if stream.At(c.Row, c.Col) == 0 {
			continue
		}
		dir := flowDir.Dir(c.Row, c.Col)
		if dir.IsSink() {
			continue
		}
		dr, dc, _ := dir.Step()
		nr, nc := c.Row+dr, c.Col+dc
		if !stream.InBounds(nr, nc) || stream.At(nr, nc) == 0 {
			continue
		}
		inflow[nr*cols+nc]++
	}

	for _, c := range allCells(rows, cols) {
		if stream.At(c.Row, c.Col) == 0 {
			continue
		}
		n := inflow[c.Row*cols+c.Col]
		if n == 0 {
			sources = append(sources, c)
		}
		if n >= 2 {
			confluences = append(confluences, c)
		}
		if flowDir.Dir(c.Row, c.Col).IsSink() {
			outlets = append(outlets, c)
		}
	}

	return sources, confluences, outlets, nil
}
