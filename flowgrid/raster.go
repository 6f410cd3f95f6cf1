package flowgrid

import (
	"math"

	"github.com/avkoehl/streamkit/dirmap"
	"github.com/avkoehl/streamkit/streamerr"
)

// Cell is a (row, col) grid coordinate.
type Cell struct {
	Row, Col int
}

// Transform is the 6-coefficient affine pixel-to-world mapping:
//
//	x = A*col + B*row + C
//	y = D*col + E*row + F
type Transform struct {
	A, B, C, D, E, F float64
}

// Resolution returns the pixel size implied by the transform, |A|.
func (t Transform) Resolution() float64 {
	return math.Abs(t.A)
}

// World converts a (row, col) cell to world coordinates using the
// cell center convention (the raster-to-world transform already accounts
// for any half-pixel offset the caller wants).
func (t Transform) World(row, col int) (x, y float64) {
	fc, fr := float64(col), float64(row)
	return t.A*fc + t.B*fr + t.C, t.D*fc + t.E*fr + t.F
}

// Raster is a dense 2-D array of float64 with an affine transform, a CRS
// tag, and a nodata sentinel. Flow-direction codes and stream-segment IDs
// are both stored as float64 and read back via Dir/Int helpers; this keeps
// one array type for every raster role in the pipeline, matching how the
// source system keeps everything in one dtype-agnostic array.
type Raster struct {
	Rows, Cols int
	data       []float64
	transform  Transform
	crs        string
	nodata     float64
}

// NewRaster allocates a Rows x Cols raster filled with nodata.
func NewRaster(rows, cols int, transform Transform, crs string, nodata float64) *Raster {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = nodata
	}
	return &Raster{Rows: rows, Cols: cols, data: data, transform: transform, crs: crs, nodata: nodata}
}

// Shape returns (rows, cols).
func (r *Raster) Shape() (int, int) { return r.Rows, r.Cols }

// Transform returns the affine pixel-to-world transform.
func (r *Raster) Transform() Transform { return r.transform }

// CRS returns the raster's CRS tag.
func (r *Raster) CRS() string { return r.crs }

// NoData returns the nodata sentinel value.
func (r *Raster) NoData() float64 { return r.nodata }

// InBounds reports whether (row, col) lies within the raster.
func (r *Raster) InBounds(row, col int) bool {
	return row >= 0 && row < r.Rows && col >= 0 && col < r.Cols
}

// At returns the value at (row, col). Out-of-bounds reads return nodata.
func (r *Raster) At(row, col int) float64 {
	if !r.InBounds(row, col) {
		return r.nodata
	}
	return r.data[row*r.Cols+col]
}

// Set stores v at (row, col). Out-of-bounds writes are silently ignored,
// matching the contract that callers never write outside Shape().
func (r *Raster) Set(row, col int, v float64) {
	if !r.InBounds(row, col) {
		return
	}
	r.data[row*r.Cols+col] = v
}

// IsNoData reports whether the cell holds the nodata sentinel.
func (r *Raster) IsNoData(row, col int) bool {
	return r.At(row, col) == r.nodata
}

// World converts (row, col) to world coordinates via the raster's transform.
func (r *Raster) World(row, col int) (x, y float64) {
	return r.transform.World(row, col)
}

// Dir reads the cell as a D8 direction code.
func (r *Raster) Dir(row, col int) dirmap.Direction {
	return dirmap.Direction(int16(r.At(row, col)))
}

// Int reads the cell as an integer (segment ID, reach_val, ...).
func (r *Raster) Int(row, col int) int {
	return int(r.At(row, col))
}

// SameShape reports whether r and other share shape and transform, as
// required before combining two rasters in one operation.
func (r *Raster) SameShape(other *Raster) bool {
	return r.Rows == other.Rows && r.Cols == other.Cols && r.transform == other.transform
}

// RequireSameShape returns streamerr.ErrShapeMismatch unless r and other
// agree on shape and transform.
func (r *Raster) RequireSameShape(other *Raster) error {
	if !r.SameShape(other) {
		return streamerr.ErrShapeMismatch
	}
	return nil
}

// Clone returns a deep copy of r.
func (r *Raster) Clone() *Raster {
	data := make([]float64, len(r.data))
	copy(data, r.data)
	return &Raster{Rows: r.Rows, Cols: r.Cols, data: data, transform: r.transform, crs: r.crs, nodata: r.nodata}
}

// Fill sets every cell to v.
func (r *Raster) Fill(v float64) {
	for i := range r.data {
		r.data[i] = v
	}
}
