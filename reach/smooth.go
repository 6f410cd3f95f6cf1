package reach

import "gonum.org/v1/gonum/floats"

// SmoothSlope applies a centered rolling mean of the given window to a
// slope series, allowing partial windows at the ends (matching pandas'
// rolling(window, center=True, min_periods=1).mean()).
func SmoothSlope(slopes []float64, window int) []float64 {
	n := len(slopes)
	out := make([]float64, n)
	if window <= 1 {
		copy(out, slopes)
		return out
	}
	half := (window - 1) / 2
	for i := 0; i < n; i++ {
		lo, hi := i-half, i-half+window-1
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		out[i] = floats.Sum(slopes[lo:hi+1]) / float64(hi-lo+1)
	}
	return out
}
