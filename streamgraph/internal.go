package streamgraph

import (
	"sort"

	"github.com/avkoehl/streamkit/core"
	"github.com/avkoehl/streamkit/dfs"
	"github.com/avkoehl/streamkit/streamerr"
)

// ValidateTree checks the tributary-tree invariant: no cycles, and every
// node has out-degree <= 1, so the network is a DAG of trees rooted at
// outlets. It is run once up front by Strahler, UpstreamLength, and
// LabelMainstem rather than trusted blindly.
func ValidateTree(g *core.Graph) error {
	hasCycle, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		return err
	}
	if hasCycle {
		return &streamerr.ErrCycleInStreamGraph{Cycles: cycles}
	}
	for _, node := range g.Vertices() {
		out, err := outEdges(g, node)
		if err != nil {
			return err
		}
		if len(out) > 1 {
			return &streamerr.ErrMultipleOutlets{Node: node, OutDegree: len(out)}
		}
	}
	return nil
}

// inEdges returns the edges terminating at node, sorted by edge ID.
func inEdges(g *core.Graph, node string) ([]*core.Edge, error) {
	return g.InNeighborEdges(node)
}

// outEdges returns the edges originating at node, sorted by edge ID.
func outEdges(g *core.Graph, node string) ([]*core.Edge, error) {
	return g.OutNeighborEdges(node)
}

// roots returns every out-degree-0 node (an outlet), sorted.
func roots(g *core.Graph) ([]string, error) {
	var rs []string
	for _, node := range g.Vertices() {
		out, err := outEdges(g, node)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 {
			rs = append(rs, node)
		}
	}
	sort.Strings(rs)
	return rs, nil
}
