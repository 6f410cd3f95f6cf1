package streamgraph

import (
	"fmt"
	"sort"

	"github.com/avkoehl/streamkit/core"
	"github.com/avkoehl/streamkit/streamerr"
)

// Segment is one routed stream segment ready to become a graph edge: an
// ordered polyline (as produced by a segment router) plus whatever
// attributes the caller wants carried onto the edge (stream_id and the
// like). Segment does not import flowgrid; callers convert Cells to world
// Points themselves via their raster's Transform, keeping this package
// independent of the raster representation.
type Segment struct {
	Geometry Polyline
	Attrs    map[string]interface{}
}

// FromSegments builds a directed multigraph from a set of routed segments.
// Each polyline p0...pn becomes an edge p0 -> pn carrying {geometry, length}
// plus the segment's own Attrs. Nodes are keyed by their endpoint
// coordinates rendered to nine significant digits (see nodeID) — the router
// emits cell-center world coordinates deterministically, so two segments
// meeting at a junction produce the same bits and automatically share a
// node; no separate snap-quantizing step is applied.
func FromSegments(segments []Segment) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	for i, seg := range segments {
		if len(seg.Geometry) < 2 {
			return nil, fmt.Errorf("%w: segment %d has fewer than two points", streamerr.ErrDegenerateSegment, i)
		}
		from := nodeID(seg.Geometry[0])
		to := nodeID(seg.Geometry[len(seg.Geometry)-1])
		attrs := make(map[string]interface{}, len(seg.Attrs)+2)
		for k, v := range seg.Attrs {
			attrs[k] = v
		}
		attrs[AttrGeometry] = seg.Geometry
		attrs[AttrLength] = seg.Geometry.Length()
		if _, err := g.AddEdge(from, to, 0, core.WithEdgeAttrs(attrs)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ToSegments is the inverse of FromSegments: every edge becomes a Segment
// carrying its stored geometry (or, if none was stored, the trivial
// two-point polyline between its endpoints) and its Attrs, sorted by edge
// ID for deterministic output.
func ToSegments(g *core.Graph) []Segment {
	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
	out := make([]Segment, 0, len(edges))
	for _, e := range edges {
		geom, _ := e.Attrs[AttrGeometry].(Polyline)
		if geom == nil {
			geom = fallbackGeometry(e.From, e.To)
		}
		out = append(out, Segment{Geometry: geom, Attrs: e.Attrs})
	}
	return out
}

// fallbackGeometry parses two "%.9g,%.9g" node IDs back into endpoints,
// for edges that were never given explicit geometry.
func fallbackGeometry(from, to string) Polyline {
	p0, ok0 := parseNodeID(from)
	p1, ok1 := parseNodeID(to)
	if !ok0 || !ok1 {
		return nil
	}
	return Polyline{p0, p1}
}

func parseNodeID(id string) (Point, bool) {
	var x, y float64
	if _, err := fmt.Sscanf(id, "%g,%g", &x, &y); err != nil {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}
