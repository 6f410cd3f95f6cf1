package reach

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// defaultMinSegmentSize is the shortest reach PELT is allowed to produce
// when a caller doesn't supply one, matching ruptures.Pelt's default
// min_size for a single-signal RBF cost. Callers with a minimum reach
// length in map units derive their own as floor(min_length / pixel_size);
// Options.MinSize carries that value through to peltSegment.
const defaultMinSegmentSize = 2

// rbfGamma picks the RBF kernel bandwidth via the median heuristic: gamma =
// 1 / median(pairwise squared distance), the same default ruptures.costs.CostRbf
// falls back to when no gamma is supplied.
func rbfGamma(y []float64) float64 {
	n := len(y)
	if n < 2 {
		return 1
	}
	pairs := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := y[i] - y[j]
			pairs = append(pairs, d*d)
		}
	}
	sort.Float64s(pairs)
	m := stat.Quantile(0.5, stat.Empirical, pairs, nil)
	if m == 0 {
		return 1
	}
	return 1 / m
}

// kernelPrefix precomputes the RBF Gram matrix and the prefix sum of its
// diagonal. cost(s, t) is the sum of squared distances of each point in the
// segment from the segment's implicit feature-space mean, which expands to
// the trace of the Gram submatrix minus its total over the segment length —
// exactly what ruptures' CostRbf.error computes. The trace is read off the
// prefix sum in O(1); the submatrix total is summed directly, O((t-s)^2).
type kernelPrefix struct {
	// cumDiag is the prefix sum of K[i][i] (always 1 for RBF).
	cumDiag []float64
	// gram is the full n x n RBF Gram matrix K.
	gram [][]float64
}

func newKernelPrefix(y []float64, gamma float64) *kernelPrefix {
	n := len(y)
	gram := make([][]float64, n)
	for i := range gram {
		gram[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		gram[i][i] = 1
		for j := i + 1; j < n; j++ {
			d := y[i] - y[j]
			k := math.Exp(-gamma * d * d)
			gram[i][j] = k
			gram[j][i] = k
		}
	}
	cumDiag := make([]float64, n+1)
	for i := 0; i < n; i++ {
		cumDiag[i+1] = cumDiag[i] + gram[i][i]
	}
	return &kernelPrefix{cumDiag: cumDiag, gram: gram}
}

// cost returns the RBF segmentation cost of the half-open interval [s, t):
// sum_{i=s..t-1} K[i][i] - (1/len) * sum_{i,j=s..t-1} K[i][j].
func (k *kernelPrefix) cost(s, t int) float64 {
	length := t - s
	if length <= 0 {
		return 0
	}
	diagSum := k.cumDiag[t] - k.cumDiag[s]
	var pairSum float64
	for i := s; i < t; i++ {
		row := k.gram[i]
		for j := s; j < t; j++ {
			pairSum += row[j]
		}
	}
	return diagSum - pairSum/float64(length)
}

// peltPenalty is the default penalty ruptures.Pelt(model="rbf").fit applies
// when pen is left unset by the caller: log(n) * variance(signal).
func peltPenalty(y []float64) float64 {
	n := len(y)
	if n < 2 {
		return 0
	}
	_, v := stat.MeanVariance(y, nil)
	return math.Log(float64(n)) * v
}

// peltSegment finds the optimal set of changepoints for y under an RBF cost
// with the given penalty, via the exact dynamic program PELT accelerates:
//
//	F[0] = -penalty
//	F[t] = min over valid s of F[s] + cost(s, t) + penalty
//
// PELT's pruning rule only discards candidate s values that can never be
// optimal, so it always returns the same changepoints as this DP, just
// faster; it is reproduced here without pruning (O(n^2) candidate (s, t)
// pairs, each costed over its own segment) since n
// (points along one routed reach) never runs large enough for the pruning
// to matter.
//
// Returns the changepoints (the start index of each reach after the first,
// i.e. ruptures' bkps with the trailing n dropped), or nil if y is too
// short to split at all. minSize is the shortest reach PELT may produce;
// callers pass 0 to fall back to defaultMinSegmentSize.
func peltSegment(y []float64, penalty float64, minSize int) []int {
	n := len(y)
	if minSize <= 0 {
		minSize = defaultMinSegmentSize
	}
	if n < 2*minSize {
		return nil
	}

	gamma := rbfGamma(y)
	kp := newKernelPrefix(y, gamma)

	f := make([]float64, n+1)
	back := make([]int, n+1)
	for i := range f {
		f[i] = math.Inf(1)
		back[i] = -1
	}
	f[0] = -penalty

	for t := minSize; t <= n; t++ {
		best := math.Inf(1)
		bestS := -1
		for s := 0; s <= t-minSize; s++ {
			if f[s] == math.Inf(1) {
				continue
			}
			v := f[s] + kp.cost(s, t) + penalty
			if v < best {
				best = v
				bestS = s
			}
		}
		f[t] = best
		back[t] = bestS
	}

	var cps []int
	for t := n; t > 0; t = back[t] {
		if back[t] <= 0 {
			break
		}
		cps = append(cps, back[t])
	}
	sort.Ints(cps)
	return cps
}

// reachIDs assigns each of n points a 0-based reach index given sorted
// changepoints cps (the start index of every reach but the first) — the
// equivalent of np.searchsorted(cps, arange(n), side="left"): point i's
// reach id is the count of changepoints strictly before it.
func reachIDs(n int, cps []int) []int {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = sort.SearchInts(cps, i)
	}
	return ids
}
