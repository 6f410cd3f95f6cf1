package streamgraph

import (
	"fmt"

	"github.com/avkoehl/streamkit/core"
	"github.com/avkoehl/streamkit/dfs"
	"github.com/avkoehl/streamkit/streamerr"
)

// UpstreamLength propagates the longest upstream path length to every edge
// via one topological sweep (github.com/avkoehl/streamkit/dfs.TopologicalSort):
//
//   - a headwater node (in-degree 0) with exactly one outgoing edge e sets
//     e.max_upstream_length = e.geometry.length;
//   - otherwise, let m = max over in-edges u of (u.max_upstream_length +
//     u.geometry.length); every outgoing edge e gets e.max_upstream_length = m.
//
// Every edge must already carry a "length" attribute (FromSegments sets it);
// missing it is streamerr.ErrMissingAttribute.
func UpstreamLength(g *core.Graph) error {
	if err := ValidateTree(g); err != nil {
		return err
	}
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return err
	}

	for _, node := range order {
		in, err := inEdges(g, node)
		if err != nil {
			return err
		}
		out, err := outEdges(g, node)
		if err != nil {
			return err
		}

		var length float64
		switch {
		case len(in) == 0:
			if len(out) == 1 {
				l, err := edgeLength(out[0])
				if err != nil {
					return err
				}
				length = l
			}
		default:
			var max float64
			for i, e := range in {
				mul, ok := e.Attrs[AttrMaxUpstreamLength].(float64)
				if !ok {
					return fmt.Errorf("%w: edge %s missing %q", streamerr.ErrMissingAttribute, e.ID, AttrMaxUpstreamLength)
				}
				l, err := edgeLength(e)
				if err != nil {
					return err
				}
				v := mul + l
				if i == 0 || v > max {
					max = v
				}
			}
			length = max
		}

		for _, e := range out {
			if err := g.SetEdgeAttr(e.ID, AttrMaxUpstreamLength, length); err != nil {
				return err
			}
		}
	}

	return nil
}

func edgeLength(e *core.Edge) (float64, error) {
	l, ok := e.Attrs[AttrLength].(float64)
	if !ok {
		return 0, fmt.Errorf("%w: edge %s missing %q", streamerr.ErrMissingAttribute, e.ID, AttrLength)
	}
	return l, nil
}
