// Package streamkit is a hydrological terrain-analysis toolkit: given a D8
// flow-direction raster (and its accompanying flow-accumulation raster, both
// produced upstream by a conditioning/flow-routing tool) it derives a stream
// network, a drainage graph annotated with topological and geometric
// attributes, and subbasin catchments.
//
// 🚀 What is streamkit?
//
//	A deterministic, thread-safe library that brings together:
//
//	  • Raster primitives: a D8 direction table, a generic flow-walker, and
//	    the grid algorithms built on top of it (tracing, linking, routing,
//	    upstream-length, catchment flooding).
//	  • Graph primitives: a directed multigraph (github.com/avkoehl/streamkit/core)
//	    annotated with Strahler order, upstream length, and mainstem labels.
//	  • Reach segmentation: PELT changepoint detection over per-cell slope.
//
// ✨ Design
//
//   - Pure               — every operation is a function of its raster/graph
//     inputs; nothing is persisted across calls.
//   - Deterministic      — row-major enumeration and edge-ID tie-breaks make
//     output bit-identical across runs and independent of goroutine scheduling.
//   - Cancellable        — long-running walks accept a context.Context,
//     checked between outer iterations (per source, per segment, per node).
//
// Subpackages:
//
//	core/           — Graph, Vertex, Edge: the directed multigraph substrate
//	dfs/            — topological sort & cycle detection over core.Graph
//	bfs/            — breadth-first traversal helpers
//	dirmap/         — the D8 ESRI direction table and sink sentinels
//	flowgrid/       — Raster type, generic flow-walker, D8 grid algorithms
//	streamgraph/    — vector↔graph conversion, Strahler order, upstream
//	                  length, mainstem labeling
//	reach/          — slope changepoint segmentation (PELT)
//
// Out of scope (external collaborators, consumed only by interface): DEM
// conditioning, flow-direction/accumulation computation, geospatial I/O, and
// vector geometry primitives.
package streamkit
