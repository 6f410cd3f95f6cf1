package streamgraph

import (
	"fmt"
	"math"
)

// Point is a world-coordinate pair.
type Point struct {
	X, Y float64
}

// Polyline is an ordered sequence of world coordinates.
type Polyline []Point

// Length returns the cumulative Euclidean length of the polyline.
func (p Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		dx := p[i].X - p[i-1].X
		dy := p[i].Y - p[i-1].Y
		total += math.Hypot(dx, dy)
	}
	return total
}

// nodeID renders a Point as the graph's node identifier with %.9g, nine
// significant digits per axis. Two endpoints with the same world coordinate
// always share a node; %.9g does not round-trip every float64, so
// coordinates that differ only beyond the ninth significant digit share one
// too.
func nodeID(p Point) string {
	return fmt.Sprintf("%.9g,%.9g", p.X, p.Y)
}

// Edge attribute keys stored on core.Edge.Attrs.
const (
	AttrGeometry          = "geometry"
	AttrLength            = "length"
	AttrStrahler          = "strahler"
	AttrMaxUpstreamLength = "max_upstream_length"
	AttrMainstem          = "mainstem"
)

// AttrOutlet is the vertex attribute key (core.Graph.VertexAttr) LabelMainstem
// sets to true on every outlet (out-degree-0) node it processes.
const AttrOutlet = "outlet"
