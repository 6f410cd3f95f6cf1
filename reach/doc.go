// Package reach segments a routed stream path into reaches of
// approximately homogeneous slope.
//
// Per-cell slope is computed from elevation and along-stream distance, then
// handed to a PELT (Pruned Exact Linear Time) changepoint search with an
// RBF cost. gonum.org/v1/gonum/stat supplies the variance and median the
// search needs for the default penalty and the merge pass.
package reach
