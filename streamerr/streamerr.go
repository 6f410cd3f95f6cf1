// Package streamerr collects the sentinel errors shared across streamkit's
// raster and graph packages. Every operation surfaces one of these instead
// of an ad-hoc message, so callers can gate behavior with
// errors.Is/errors.As regardless of which package produced the failure.
package streamerr

import "errors"

var (
	// ErrShapeMismatch indicates two rasters passed to the same operation
	// disagree on shape or affine transform.
	ErrShapeMismatch = errors.New("streamkit: raster shape or transform mismatch")

	// ErrMissingAttribute indicates a graph operation required an edge
	// attribute (geometry, strahler, max_upstream_length, ...) that is not
	// present on every edge it visited.
	ErrMissingAttribute = errors.New("streamkit: missing edge attribute")

	// ErrInvalidSegmentGeometry indicates a routed path did not start/end at
	// the expected cells or did not cover its segment mask.
	ErrInvalidSegmentGeometry = errors.New("streamkit: invalid segment geometry")

	// ErrDegenerateSegment indicates a segment has fewer than two cells.
	ErrDegenerateSegment = errors.New("streamkit: degenerate segment")

	// ErrInvalidDirectionCode indicates a stream cell holds a code that is
	// neither a valid D8 direction nor a sink sentinel. Callers that receive
	// this as a warning (rather than a hard failure) should treat the cell
	// as a sink.
	ErrInvalidDirectionCode = errors.New("streamkit: invalid D8 direction code")

	// ErrCancelled indicates a caller-supplied context was cancelled.
	ErrCancelled = errors.New("streamkit: operation cancelled")
)

// ErrCycleInStreamGraph indicates a stream graph violates the tributary-tree
// invariant by containing a cycle; Cycles holds the node-ID cycles found.
type ErrCycleInStreamGraph struct {
	Cycles [][]string
}

func (e *ErrCycleInStreamGraph) Error() string {
	return "streamkit: stream graph contains a cycle (violates tributary-tree invariant)"
}

// ErrMultipleOutlets indicates a node has more than one outgoing edge,
// violating the invariant that every node has out-degree <= 1.
type ErrMultipleOutlets struct {
	Node      string
	OutDegree int
}

func (e *ErrMultipleOutlets) Error() string {
	return "streamkit: node " + e.Node + " has out-degree > 1, expected a tributary tree"
}

// Warner receives non-fatal diagnostics that the core would otherwise have
// to suppress or escalate into hard errors: degenerate mainstem ties,
// residual flat cells, surprising direction codes. A nil Warner is valid;
// callers that don't care about warnings simply pass one that discards
// them, or leave the option unset.
type Warner interface {
	Warnf(format string, args ...interface{})
}

// WarnerFunc adapts a plain function to the Warner interface.
type WarnerFunc func(format string, args ...interface{})

// Warnf implements Warner.
func (f WarnerFunc) Warnf(format string, args ...interface{}) {
	if f != nil {
		f(format, args...)
	}
}

// Discard is a Warner that drops every message.
var Discard Warner = WarnerFunc(func(string, ...interface{}) {})
