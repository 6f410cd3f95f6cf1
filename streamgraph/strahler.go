package streamgraph

import (
	"github.com/avkoehl/streamkit/core"
)

// strahlerFrame is one stack entry in the iterative post-order walk:
// the node being resolved, and how far through its in-edges we've got.
type strahlerFrame struct {
	node     string
	inEdges  []*core.Edge
	resolved bool // children all pushed/resolved; ready to combine
	idx      int
}

// Strahler assigns every edge its Strahler number.
//
// For each root (out-degree 0 node), work upstream: a leaf edge (its
// upstream node has in-degree 0) gets order 1; otherwise an edge's order is
// max(U)+1 if the maximum upstream order occurs at least twice among its
// immediate upstream edges U, else max(U).
//
// Implemented as an explicit-stack post-order walk rather than
// language-level recursion — the recursion depth in a recursive
// implementation can approach the longest path in the network, which a
// large basin can make deep enough to blow the stack.
func Strahler(g *core.Graph) error {
	if err := ValidateTree(g); err != nil {
		return err
	}
	rs, err := roots(g)
	if err != nil {
		return err
	}

	nodeOrder := make(map[string]int, len(g.Vertices()))

	for _, root := range rs {
		if _, done := nodeOrder[root]; done {
			continue
		}
		stack := []*strahlerFrame{{node: root}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.inEdges == nil {
				ie, err := inEdges(g, top.node)
				if err != nil {
					return err
				}
				top.inEdges = ie
			}
			if top.idx < len(top.inEdges) {
				child := top.inEdges[top.idx].From
				if _, done := nodeOrder[child]; done {
					top.idx++
					continue
				}
				stack = append(stack, &strahlerFrame{node: child})
				continue
			}

			// All upstream nodes resolved; combine their orders.
			var order int
			if len(top.inEdges) == 0 {
				order = 1
			} else {
				counts := make(map[int]int, len(top.inEdges))
				max := 0
				for _, e := range top.inEdges {
					v := nodeOrder[e.From]
					if err := g.SetEdgeAttr(e.ID, AttrStrahler, v); err != nil {
						return err
					}
					counts[v]++
					if v > max {
						max = v
					}
				}
				order = max
				if counts[max] >= 2 {
					order = max + 1
				}
			}
			nodeOrder[top.node] = order

			out, err := outEdges(g, top.node)
			if err != nil {
				return err
			}
			if len(out) == 1 {
				if err := g.SetEdgeAttr(out[0].ID, AttrStrahler, order); err != nil {
					return err
				}
			}
			stack = stack[:len(stack)-1]
		}
	}

	return nil
}
