package flowgrid_test

import (
	"context"
	"testing"

	"github.com/avkoehl/streamkit/dirmap"
	"github.com/avkoehl/streamkit/flowgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelHeadsFiltersNonHeads(t *testing.T) {
	lines := []flowgrid.ReferenceLine{
		{{X: 0, Y: 4}, {X: 2, Y: 2}},
		{{X: 4, Y: 4}, {X: 2, Y: 2}},
		{{X: 2, Y: 2}, {X: 2, Y: 0}},
	}
	heads := flowgrid.ChannelHeads(lines)
	require.Len(t, heads, 2)
	assert.Equal(t, flowgrid.ReferencePoint{X: 0, Y: 4}, heads[0])
	assert.Equal(t, flowgrid.ReferencePoint{X: 4, Y: 4}, heads[1])
}

func TestRasterizeReferenceLinesPrunesAndRelabels(t *testing.T) {
	fd := flowgrid.NewRaster(5, 5, testTransform(), "", float64(dirmap.Undefined))
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			fd.Set(r, c, float64(dirmap.Southeast))
		}
	}
	fd.Set(4, 4, float64(dirmap.Outlet))

	lines := []flowgrid.ReferenceLine{
		{{X: 0, Y: 0}, {X: 4, Y: 4}},
	}

	out, err := flowgrid.RasterizeReferenceLines(context.Background(), lines, fd)
	require.NoError(t, err)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if r == c {
				assert.Equal(t, 1, out.Int(r, c))
			} else {
				assert.Equal(t, 0, out.Int(r, c))
			}
		}
	}
}
