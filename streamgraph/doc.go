// Package streamgraph lifts a routed stream network from rasters to a
// directed multigraph and annotates it with the attributes that only make
// sense once the network is a graph: Strahler order, maximum upstream
// length, and mainstem membership.
//
// The graph itself is a github.com/avkoehl/streamkit/core.Graph: nodes are
// coordinate strings built from cell-center world coordinates (nine
// significant digits per axis, see nodeID; no separate snap-quantization),
// edges carry geometry and length plus the attributes later stages add. The
// tributary-tree invariant (no cycles, every node has out-degree ≤ 1) is
// checked by ValidateTree, cycles with
// github.com/avkoehl/streamkit/dfs.DetectCycles and out-degree with a scan
// of every node, before any of the three annotation passes runs.
package streamgraph
