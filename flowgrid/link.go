package flowgrid

import "context"

// LinkStreams assigns a positive, gap-free link ID to every maximal stream
// segment between junctions. Sources are processed in row-major order for
// determinism; each walk paints cells with the current link ID until it
// hits a sink, leaves the raster, reaches an already-labeled cell, or
// reaches a confluence.
//
// Confluence convention: a confluence terminates the link arriving at it
// without being painted by that arm — it is discovered and queued as the
// start of its own, new downstream link, so the confluence cell itself
// carries the label of the link that continues from it.
func LinkStreams(ctx context.Context, stream, flowDir *Raster) (*Raster, error) {
	if err := stream.RequireSameShape(flowDir); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	sources, confluences, _, err := FindStreamNodes(ctx, stream, flowDir)
	if err != nil {
		return nil, err
	}
	isConfluence := make(map[Cell]bool, len(confluences))
	for _, c := range confluences {
		isConfluence[c] = true
	}

	rows, cols := stream.Shape()
	labels := NewRaster(rows, cols, stream.Transform(), stream.CRS(), 0)

	queue := sortRowMajor(sources)
	queued := make(map[Cell]bool, len(queue))
	for _, c := range queue {
		queued[c] = true
	}

	nextID := 1
	for i := 0; i < len(queue); i++ {
		start := queue[i]
		if labels.At(start.Row, start.Col) != 0 {
			continue
		}
		id := float64(nextID)
		nextID++

		var confluenceHit *Cell
		_, walkErr := Walk(ctx, flowDir, start,
			func(row, col int) bool {
				if labels.At(row, col) != 0 {
					return true
				}
				if isConfluence[Cell{Row: row, Col: col}] {
					c := Cell{Row: row, Col: col}
					confluenceHit = &c
					return true
				}
				return false
			},
			func(row, col int) { labels.Set(row, col, id) },
		)
		if walkErr != nil {
			return nil, walkErr
		}
		if confluenceHit != nil && !queued[*confluenceHit] {
			queue = append(queue, *confluenceHit)
			queued[*confluenceHit] = true
		}
	}

	return labels, nil
}
