package qpbuild

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ll550/Trajectory-Generator/basis"
	"github.com/ll550/Trajectory-Generator/types"
)

// floorSeg returns the largest segment index s in [0, nseg) with
// keytimes[s] <= t (strict=false) or keytimes[s] < t (strict=true).
func floorSeg(keytimes []float64, t float64, strict bool) int {
	nseg := len(keytimes) - 1
	seg := 0
	for s := 0; s < nseg; s++ {
		if strict {
			if keytimes[s] < t {
				seg = s
			}
		} else if keytimes[s] <= t {
			seg = s
		}
	}
	return seg
}

// splitBounds expands every Bound into one or more single-segment Bounds.
// An empty interval is interpreted as the entire trajectory; a bound
// spanning multiple segments is split at segment boundaries and the
// remainder is re-processed (here: re-queued) until every resulting Bound
// lies within exactly one segment.
func splitBounds(bounds []types.Bound, keytimes []float64) ([]types.Bound, error) {
	nseg := len(keytimes) - 1
	queue := append([]types.Bound(nil), bounds...)
	var out []types.Bound

	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]

		t0, t1 := b.Time[0], b.Time[1]
		if !b.TimeSet {
			t0, t1 = keytimes[0], keytimes[nseg]
		}
		if t0 < keytimes[0] || t1 > keytimes[nseg] {
			return nil, types.ErrOutOfRange(t0, t1, keytimes[0], keytimes[nseg])
		}

		if t0 == t1 {
			seg := floorSeg(keytimes, t0, false)
			if t0 == keytimes[nseg] {
				seg = nseg - 1
			}
			b.TimeSet = true
			b.Time = [2]float64{t0, t1}
			b.Seg = seg
			out = append(out, b)
			continue
		}

		startSeg := floorSeg(keytimes, t0, false)
		endSeg := floorSeg(keytimes, t1, true)

		if startSeg != endSeg {
			clone := b
			clone.TimeSet = true
			clone.Time = [2]float64{keytimes[startSeg+1], t1}
			queue = append(queue, clone)

			b.TimeSet = true
			b.Time = [2]float64{t0, keytimes[startSeg+1]}
			b.Seg = startSeg
			out = append(out, b)
			continue
		}

		b.TimeSet = true
		b.Time = [2]float64{t0, t1}
		b.Seg = startSeg
		out = append(out, b)
	}
	return out, nil
}

// sampleTimes returns the uniformly spaced sample times within a
// single-segment bound, step = segment duration / constraintsPerSeg, from
// Time[0] to Time[1] inclusive. A single-instant bound yields one sample.
func sampleTimes(b types.Bound, keytimes []float64, constraintsPerSeg int) []float64 {
	if b.Time[0] == b.Time[1] {
		return []float64{b.Time[0]}
	}
	step := (keytimes[b.Seg+1] - keytimes[b.Seg]) / float64(constraintsPerSeg)
	var out []float64
	const eps = 1e-9
	for t := b.Time[0]; t <= b.Time[1]+eps; t += step {
		out = append(out, t)
	}
	if n := len(out); n > 0 && out[n-1] > b.Time[1] {
		out[n-1] = b.Time[1]
	}
	return out
}

// BuildInequality assembles the sampled inequality rows (Aineq, bineq).
// 1-norm and infinity-norm bounds are accepted but currently treated as
// no-ops, a reserved slot in the bound-type taxonomy for future coupling
// constraints.
func BuildInequality(bounds []types.Bound, durations []float64, keytimes []float64, d, n, constraintsPerSeg int, eng *basis.Engine) (*denseRows, error) {
	nseg := len(durations)
	rows := newDenseRows(DecisionLength(d, n, nseg))
	if len(bounds) == 0 {
		return rows, nil
	}

	split, err := splitBounds(bounds, keytimes)
	if err != nil {
		return nil, err
	}

	for _, b := range split {
		if b.Type != types.BoundLower && b.Type != types.BoundUpper {
			continue // 1-norm/inf-norm: reserved, no-op.
		}
		samples := sampleTimes(b, keytimes, constraintsPerSeg)
		taus := make([]float64, len(samples))
		for i, t := range samples {
			// Deliberately not divided by the segment duration here: the
			// later column scaling below is independent of derivative
			// order k, unlike the waypoint-equality dt^k scaling in
			// BuildEquality.
			taus[i] = t - keytimes[b.Seg]
		}
		block, err := eng.Block(taus, b.Derivative)
		if err != nil {
			return nil, err
		}
		scaleColumnsByDuration(block, n, durations[b.Seg])

		sign := 1.0
		if b.Type == types.BoundLower {
			sign = -1.0
		}

		for j := 0; j < d; j++ {
			if j >= len(b.Arg) || math.IsNaN(b.Arg[j]) {
				continue
			}
			offset := FlatIndex(d, n, j, b.Seg)
			for i := 0; i < len(samples); i++ {
				row := rows.newRow()
				blockRow := make([]float64, n+1)
				for c := 0; c <= n; c++ {
					blockRow[c] = sign * block.At(i, c)
				}
				place(row, offset, blockRow)
				rows.addRow(row, sign*b.Arg[j])
			}
		}
	}
	return rows, nil
}

// scaleColumnsByDuration scales column c of block by 1/duration^(n-c), in
// place. This scaling is independent of derivative order, intentionally:
// see BuildInequality's sibling comment above.
func scaleColumnsByDuration(block *mat.Dense, n int, duration float64) {
	rows, cols := block.Dims()
	for c := 0; c < cols; c++ {
		p := basis.ExponentOf(n, c)
		factor := 1 / basis.Pow(duration, p)
		for i := 0; i < rows; i++ {
			block.Set(i, c, block.At(i, c)*factor)
		}
	}
}
