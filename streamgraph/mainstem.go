package streamgraph

import (
	"fmt"

	"github.com/avkoehl/streamkit/core"
	"github.com/avkoehl/streamkit/streamerr"
)

// LabelMainstem marks, for each outlet, the single upstream path that forms
// the drainage network's main channel. From each root it walks upstream,
// at every junction choosing the in-edge with the highest Strahler order,
// breaking ties by the largest max_upstream_length, and any remaining tie
// deterministically by edge ID (warned through warn, since it indicates the
// network genuinely can't distinguish a dominant branch there). warn may be
// nil, equivalent to streamerr.Discard.
//
// Requires every edge to already carry "strahler" and "max_upstream_length"
// attributes (run Strahler and UpstreamLength first); otherwise returns
// streamerr.ErrMissingAttribute.
func LabelMainstem(g *core.Graph, warn streamerr.Warner) error {
	if warn == nil {
		warn = streamerr.Discard
	}
	if err := ValidateTree(g); err != nil {
		return err
	}

	for _, e := range g.Edges() {
		if _, ok := e.Attrs[AttrStrahler].(int); !ok {
			return fmt.Errorf("%w: edge %s missing %q", streamerr.ErrMissingAttribute, e.ID, AttrStrahler)
		}
		if _, ok := e.Attrs[AttrMaxUpstreamLength].(float64); !ok {
			return fmt.Errorf("%w: edge %s missing %q", streamerr.ErrMissingAttribute, e.ID, AttrMaxUpstreamLength)
		}
		if err := g.SetEdgeAttr(e.ID, AttrMainstem, false); err != nil {
			return err
		}
	}

	rs, err := roots(g)
	if err != nil {
		return err
	}
	for _, root := range rs {
		// Tag the outlet vertex so later callers (tests, diagnostics) can find
		// it in O(1) via g.VertexAttr instead of recomputing roots(g).
		if err := g.SetVertexAttr(root, AttrOutlet, true); err != nil {
			return err
		}
		current := root
		for {
			in, err := inEdges(g, current)
			if err != nil {
				return err
			}
			if len(in) == 0 {
				break
			}

			maxStrahler := in[0].Attrs[AttrStrahler].(int)
			for _, e := range in {
				if s := e.Attrs[AttrStrahler].(int); s > maxStrahler {
					maxStrahler = s
				}
			}
			var candidates []*core.Edge
			for _, e := range in {
				if e.Attrs[AttrStrahler].(int) == maxStrahler {
					candidates = append(candidates, e)
				}
			}

			var chosen *core.Edge
			if len(candidates) == 1 {
				chosen = candidates[0]
			} else {
				maxLen := candidates[0].Attrs[AttrMaxUpstreamLength].(float64)
				for _, e := range candidates {
					if l := e.Attrs[AttrMaxUpstreamLength].(float64); l > maxLen {
						maxLen = l
					}
				}
				var longest []*core.Edge
				for _, e := range candidates {
					if e.Attrs[AttrMaxUpstreamLength].(float64) == maxLen {
						longest = append(longest, e)
					}
				}
				if len(longest) > 1 {
					warn.Warnf("mainstem: tie in both strahler and upstream length at node %s; choosing edge %s", current, longest[0].ID)
				}
				chosen = longest[0]
			}

			if err := g.SetEdgeAttr(chosen.ID, AttrMainstem, true); err != nil {
				return err
			}
			current = chosen.From
		}
	}

	return nil
}
