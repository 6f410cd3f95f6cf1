// SPDX-License-Identifier: MIT
// Package core_test examples: how streamkit's raster/graph layers drive the
// core.Graph API in practice.
//
// Purpose:
//   - Show the construction idioms the rest of streamkit relies on
//     (directed multigraph, edge attributes, deterministic iteration).
//   - Demonstrate sandboxed what-if edits via Clone().

package core_test

import (
	"fmt"
	"sort"

	"github.com/avkoehl/streamkit/core"
)

// Utility: sortAsc returns a sorted copy of a string slice (IDs).
func sortAsc(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}

// ExampleGraph_drainageNetwork assembles a small drainage network the way
// streamgraph.FromSegments does: a directed multigraph whose vertices are
// junction coordinates and whose edges are stream segments carrying a
// length attribute.
//
// Scenario:
//   - Two headwater arms meet at a confluence; the trunk continues to the
//     outlet.
//   - Each edge stores its channel length; the outlet is recognizable as
//     the only vertex with out-degree zero.
//
// Determinism:
//   - Vertices() returns IDs in sorted order, so the printed order is
//     stable — the same ordering streamkit's annotation passes rely on
//     for their tie-breaks.
func ExampleGraph_drainageNetwork() {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())

	type segment struct {
		from, to string
		length   float64
	}
	segments := []segment{
		{"armA", "confluence", 340.5},
		{"armB", "confluence", 512.0},
		{"confluence", "outlet", 221.25},
	}
	for _, s := range segments {
		if _, err := g.AddEdge(s.from, s.to, 0,
			core.WithEdgeAttrs(map[string]interface{}{"length": s.length}),
		); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	var total float64
	for _, e := range g.Edges() {
		total += e.Attrs["length"].(float64)
	}

	var outlets []string
	for _, v := range g.Vertices() {
		if edges, err := g.OutNeighborEdges(v); err == nil && len(edges) == 0 {
			outlets = append(outlets, v)
		}
	}

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("segments:", g.EdgeCount())
	fmt.Printf("network length: %.2f\n", total)
	fmt.Println("outlets:", sortAsc(outlets))
	// Output:
	// vertices: 4
	// segments: 3
	// network length: 1073.75
	// outlets: [outlet]
}

// ExampleGraph_whatIfPruning simulates removing a confluence without
// touching the production topology: Clone() gives an isolated deep copy,
// RemoveVertex() detaches the junction and its segments atomically, and the
// original graph is untouched afterwards.
//
// Why this matters:
//   - Subbasin and mainstem analyses frequently ask "what drains through
//     this junction?"; answering destructively on a shared graph would
//     corrupt every later pass.
func ExampleGraph_whatIfPruning() {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	for _, arc := range [][2]string{
		{"armA", "confluence"},
		{"armB", "confluence"},
		{"confluence", "outlet"},
		{"tributary", "outlet"},
	} {
		if _, err := g.AddEdge(arc[0], arc[1], 0); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	sandbox := g.Clone()
	if err := sandbox.RemoveVertex("confluence"); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("sandbox edges after pruning:", sandbox.EdgeCount())
	fmt.Println("production edges untouched:", g.EdgeCount())
	// Output:
	// sandbox edges after pruning: 1
	// production edges untouched: 4
}

// ExampleGraph_junctionDegrees classifies junctions by in-degree, the same
// bookkeeping the stream node finder performs on rasters: in-degree 0 is a
// headwater, in-degree >= 2 a confluence.
func ExampleGraph_junctionDegrees() {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	for _, arc := range [][2]string{
		{"armA", "confluence"},
		{"armB", "confluence"},
		{"confluence", "outlet"},
	} {
		if _, err := g.AddEdge(arc[0], arc[1], 0); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	var headwaters, confluences []string
	for _, v := range g.Vertices() {
		in, _, _, err := g.Degree(v)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		switch {
		case in == 0:
			headwaters = append(headwaters, v)
		case in >= 2:
			confluences = append(confluences, v)
		}
	}

	fmt.Println("headwaters:", sortAsc(headwaters))
	fmt.Println("confluences:", sortAsc(confluences))
	// Output:
	// headwaters: [armA armB]
	// confluences: [confluence]
}
