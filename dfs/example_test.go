package dfs_test

import (
	"fmt"
	"strings"

	"github.com/avkoehl/streamkit/core"
	"github.com/avkoehl/streamkit/dfs"
)

// ExampleDFS demonstrates a depth-first traversal (post-order) on a braided
// channel network: flow splits below "alder", rejoins at "dogwood", and
// splits again into two distributary mouths.
//
// Network structure (edges point downstream):
//
//	   alder
//	   /   \
//	birch  cedar
//	   \   /
//	  dogwood
//	   /   \
//	 elm    fir
//
// Starting at "alder", expected post-order: elm fir dogwood birch cedar alder
func ExampleDFS() {
	// Build a new directed graph
	g := core.NewGraph(core.WithDirected(true))

	// Add directed edges to form the braid:
	// alder -> birch, alder -> cedar, birch -> dogwood, cedar -> dogwood,
	// dogwood -> elm, dogwood -> fir
	for _, edge := range []struct{ U, V string }{
		{"alder", "birch"}, {"alder", "cedar"},
		{"birch", "dogwood"}, {"cedar", "dogwood"},
		{"dogwood", "elm"}, {"dogwood", "fir"},
	} {
		// We ignore errors here for brevity; AddEdge creates the vertices if needed.
		_, _ = g.AddEdge(edge.U, edge.V, 0)
	}

	// Perform DFS starting from the upstream-most channel "alder"
	res, err := dfs.DFS(g, "alder")
	if err != nil {
		// If an error occurred (e.g., missing start vertex), print and exit
		fmt.Println("error:", err)
		return
	}

	// res.Order is the post-order traversal of the DFS.
	// We join the slice of vertex IDs with spaces for printing.
	fmt.Println(strings.Join(res.Order, " "))

	// Output (exact post-order for this structure):
	// elm fir dogwood birch cedar alder
}

// ExampleTopologicalSort demonstrates computing a valid topological order
// over a braided network with a shared reach "dogwood" and a side channel
// through "grove". Edges point downstream:
//
//	   alder
//	   /   \
//	birch  cedar
//	   \   /  \
//	  dogwood  grove
//	   /   \     \
//	 elm    fir   hazel
//
// One valid topological order: alder cedar grove hazel birch dogwood fir elm
func ExampleTopologicalSort() {
	// Build a new directed graph
	g := core.NewGraph(core.WithDirected(true))

	// Add directed edges to form the DAG structure
	for _, edge := range []struct{ U, V string }{
		{"alder", "birch"}, {"alder", "cedar"},
		{"birch", "dogwood"}, {"cedar", "dogwood"}, {"cedar", "grove"},
		{"dogwood", "elm"}, {"dogwood", "fir"}, {"grove", "hazel"},
	} {
		// AddEdge will create missing vertices automatically.
		_, _ = g.AddEdge(edge.U, edge.V, 0)
	}

	// Compute a topological sort of the entire network
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		// If an error occurred (e.g., cycle detected), print and exit
		fmt.Println("error:", err)
		return
	}

	// Print the topological order, joining vertex IDs with spaces
	fmt.Println(strings.Join(order, " "))

	// Output (one valid ordering; actual order may vary among valid permutations):
	// alder cedar grove hazel birch dogwood fir elm
}

// ExampleDetectCycles shows cycle detection on a digitized stream network
// where a bad edge ("krummholz" back to "birch") closes a loop — water
// cannot flow in a circle, so this always indicates corrupt input geometry.
func ExampleDetectCycles() {
	// Create a new directed graph
	g := core.NewGraph(core.WithDirected(true))

	// Add directed edges; the last one deliberately closes a loop.
	_, _ = g.AddEdge("alder", "birch", 0) // AddEdge creates vertices if they don’t exist yet
	_, _ = g.AddEdge("birch", "cedar", 0)
	_, _ = g.AddEdge("birch", "dogwood", 0)
	_, _ = g.AddEdge("cedar", "elm", 0)
	_, _ = g.AddEdge("elm", "fir", 0)
	_, _ = g.AddEdge("fir", "grove", 0)
	_, _ = g.AddEdge("dogwood", "hazel", 0)
	_, _ = g.AddEdge("hazel", "iris", 0)
	_, _ = g.AddEdge("iris", "juniper", 0)
	_, _ = g.AddEdge("juniper", "krummholz", 0)
	_, _ = g.AddEdge("krummholz", "birch", 0) // this edge closes the cycle back to birch

	// Detect all simple cycles in the network
	has, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		// If an error occurred during neighbor lookup, print and exit
		fmt.Println("error:", err)
		return
	}

	// Print whether any cycle was found
	fmt.Println(has)

	// If cycles were found, print each cycle on its own line
	for _, cyc := range cycles {
		// Join the cycle’s vertices with " -> " for readability
		fmt.Println(strings.Join(cyc, " -> "))
	}

	// Output:
	// true
	// birch -> dogwood -> hazel -> iris -> juniper -> krummholz -> birch
}
