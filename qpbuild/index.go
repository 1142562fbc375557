// Package qpbuild assembles the pieces of the QP problem (H, Aeq/beq,
// Aineq/bineq) from waypoints, bounds, and a basis engine: the Index Map,
// Equality Builder, Continuity Builder, Cost Builder, and Inequality
// Builder.
package qpbuild

// FlatIndex returns the starting column in the decision vector (and every
// constraint matrix) for the coefficient block belonging to dimension j,
// segment s, given d dimensions, polynomial order n. Dimensions interleave
// within each segment: block s, j occupies columns
// [(j+d*s)*(n+1), (j+d*s)*(n+1)+n+1).
func FlatIndex(d, n, j, s int) int {
	return (j + d*s) * (n + 1)
}

// SegmentStride is the column offset between the same dimension's block in
// two consecutive segments: (n+1)*d. The continuity builder relies on this
// to place a segment's "end" block and the next segment's "start" block in
// the same row.
func SegmentStride(d, n int) int {
	return (n + 1) * d
}

// DecisionLength returns d*N*(n+1), the length of the flat decision vector.
func DecisionLength(d, n, nseg int) int {
	return d * nseg * (n + 1)
}
