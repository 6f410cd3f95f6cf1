package reach

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Options configures a Delineate run.
type Options struct {
	// SmoothWindow is the centered rolling-mean window (in points) applied
	// to the slope series before changepoint search. 0 or 1 disables it.
	SmoothWindow int
	// Penalty overrides PELT's default log(n)*variance(slope) penalty; a
	// higher penalty yields fewer, longer reaches. Zero means "compute the
	// default".
	Penalty float64
	// MergeThresholdDegrees: after PELT, adjacent reaches whose median
	// slope differs by less than this are merged. Zero disables merging.
	MergeThresholdDegrees float64
	// MinSize is the shortest reach PELT may produce, in points; callers
	// usually derive it as floor(min_length / pixel_size). Zero falls back
	// to defaultMinSegmentSize.
	MinSize int
	// StreamID is not read by Delineate; points carry no stream ID. The
	// raster value that keeps reaches of different stream segments apart is
	// ReachVal(p, streamID) = ReachID + streamID*1000, which takes the
	// stream ID as its own argument.
	StreamID int
}

// Delineate assigns each point a ReachID by changepoint-segmenting its
// slope series, then optionally merges adjacent reaches whose slopes are
// statistically indistinguishable. points is mutated in place and also
// returned.
func Delineate(points []Point, opts Options) []Point {
	n := len(points)
	if n == 0 {
		return points
	}
	minSize := opts.MinSize
	if minSize <= 0 {
		minSize = defaultMinSegmentSize
	}
	if n < 2*minSize {
		for i := range points {
			points[i].ReachID = 0
		}
		return points
	}

	slopes := make([]float64, n)
	for i, p := range points {
		slopes[i] = p.SlopeDegrees
	}
	signal := slopes
	if opts.SmoothWindow > 1 {
		signal = SmoothSlope(slopes, opts.SmoothWindow)
	}

	penalty := opts.Penalty
	if penalty == 0 {
		penalty = peltPenalty(signal)
	}
	cps := peltSegment(signal, penalty, minSize)
	ids := reachIDs(n, cps)
	for i := range points {
		points[i].ReachID = ids[i]
	}

	// The merge pass compares raw per-cell slopes, not the smoothed signal
	// the changepoint search ran on.
	if opts.MergeThresholdDegrees > 0 {
		mergeByThreshold(points, slopes, opts.MergeThresholdDegrees)
	}

	return points
}

// ReachVal returns the value to paint into a reach-id raster for p, unique
// across stream segments sharing one raster.
func ReachVal(p Point, streamID int) int {
	return p.ReachID + streamID*1000
}

// mergeByThreshold iteratively merges adjacent reaches whose median slope
// differs by less than threshold, then renumbers reach IDs sequentially
// from 0. Mirrors the original's repeated single-pass merge: each pass
// scans left to right merging the first mergeable neighbor pair found,
// and repeats until a full pass merges nothing.
func mergeByThreshold(points []Point, slopes []float64, threshold float64) {
	for {
		ids := sortedUniqueReachIDs(points)
		if len(ids) < 2 {
			return
		}
		medians := make(map[int]float64, len(ids))
		for _, id := range ids {
			medians[id] = medianSlope(points, slopes, id)
		}

		merged := false
		for i := 0; i+1 < len(ids); i++ {
			left, right := ids[i], ids[i+1]
			if abs(medians[left]-medians[right]) < threshold {
				for j := range points {
					if points[j].ReachID == right {
						points[j].ReachID = left
					}
				}
				merged = true
				break
			}
		}
		if !merged {
			renumberReachIDs(points)
			return
		}
	}
}

func sortedUniqueReachIDs(points []Point) []int {
	seen := make(map[int]bool)
	for _, p := range points {
		seen[p.ReachID] = true
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func medianSlope(points []Point, slopes []float64, reachID int) float64 {
	var vals []float64
	for i, p := range points {
		if p.ReachID == reachID {
			vals = append(vals, slopes[i])
		}
	}
	if len(vals) == 0 {
		return 0
	}
	sort.Float64s(vals)
	return stat.Quantile(0.5, stat.Empirical, vals, nil)
}

func renumberReachIDs(points []Point) {
	ids := sortedUniqueReachIDs(points)
	remap := make(map[int]int, len(ids))
	for i, id := range ids {
		remap[id] = i
	}
	for i := range points {
		points[i].ReachID = remap[points[i].ReachID]
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
