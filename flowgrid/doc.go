// Package flowgrid implements the raster side of streamkit: a minimal
// in-memory Raster type and the D8 grid-walking algorithms built on top of
// a single generic primitive, Walk.
//
// Most grid algorithms in this package — stream tracing, link labeling,
// and segment routing — are specializations
// of Walk with a different stop predicate and visitor, rather than a
// hand-rolled traversal of their own. Pour-point catchment flooding
// (DelineateSubbasins) goes one step further: it projects the raster's D8
// directions into a github.com/avkoehl/streamkit/core.Graph (one node per
// cell, one edge per reverse-D8 contribution) and walks it with
// github.com/avkoehl/streamkit/bfs, the same breadth-first-search primitive
// the rest of streamkit uses for unweighted traversal over core.Graph.
package flowgrid
