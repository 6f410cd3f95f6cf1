package reach

import (
	"math"

	"github.com/avkoehl/streamkit/flowgrid"
)

// Point is one row of the reach table: a cell along a routed segment,
// enriched with along-stream distance, elevation, slope, and (once
// Delineate has run) its reach assignment.
type Point struct {
	PointID      int
	Row, Col     int
	X, Y         float64
	Distance     float64
	Elevation    float64
	SlopeDegrees float64
	ReachID      int
}

// BuildPoints converts a routed path (flowgrid.RouteSegment's output) into
// the reach table:
// world coordinates via transform, cumulative Euclidean distance along the
// path, elevation sampled from dem, and slope in degrees from the gradient
// of elevation with respect to distance.
func BuildPoints(path []flowgrid.Cell, transform flowgrid.Transform, dem *flowgrid.Raster) []Point {
	n := len(path)
	points := make([]Point, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	elev := make([]float64, n)
	dist := make([]float64, n)

	for i, c := range path {
		x, y := transform.World(c.Row, c.Col)
		xs[i], ys[i] = x, y
		elev[i] = dem.At(c.Row, c.Col)
		if i > 0 {
			dist[i] = dist[i-1] + math.Hypot(x-xs[i-1], y-ys[i-1])
		}
	}

	slopes := slopeDegrees(elev, dist)
	for i, c := range path {
		points[i] = Point{
			PointID:      i,
			Row:          c.Row,
			Col:          c.Col,
			X:            xs[i],
			Y:            ys[i],
			Distance:     dist[i],
			Elevation:    elev[i],
			SlopeDegrees: slopes[i],
		}
	}
	return points
}

// slopeDegrees returns |atan(d elevation / d distance)| in degrees, via a
// numerical gradient over possibly non-uniform spacing: central
// differences in the interior, one-sided at the ends.
func slopeDegrees(elevation, distance []float64) []float64 {
	g := gradient(elevation, distance)
	out := make([]float64, len(g))
	for i, v := range g {
		out[i] = math.Abs(math.Atan(v) * 180 / math.Pi)
	}
	return out
}

func gradient(y, x []float64) []float64 {
	n := len(y)
	g := make([]float64, n)
	if n < 2 {
		return g
	}
	if d := x[1] - x[0]; d != 0 {
		g[0] = (y[1] - y[0]) / d
	}
	if d := x[n-1] - x[n-2]; d != 0 {
		g[n-1] = (y[n-1] - y[n-2]) / d
	}
	for i := 1; i < n-1; i++ {
		hs := x[i] - x[i-1]
		hd := x[i+1] - x[i]
		denom := hs * hd * (hd + hs)
		if denom == 0 {
			continue
		}
		g[i] = (hs*hs*y[i+1] + (hd*hd-hs*hs)*y[i] - hd*hd*y[i-1]) / denom
	}
	return g
}
