package qpbuild

import (
	"github.com/ll550/Trajectory-Generator/basis"
)

func maxInt(vals []int) int {
	m := 0
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}

// BuildContinuity assembles the interior-knot continuity rows (C, bC): at
// each interior knot i, for every derivative k up to max(contDeriv) and
// every dimension j with k <= contDeriv[j], a row equates segment (i-1)'s
// k-th derivative at tau=1 (scaled by 1/dt1^k) with segment i's k-th
// derivative at tau=0 (scaled by 1/dt2^k).
func BuildContinuity(durations []float64, contDeriv []int, n int, eng *basis.Engine) (*denseRows, error) {
	d := len(contDeriv)
	nseg := len(durations)
	rows := newDenseRows(DecisionLength(d, n, nseg))
	if nseg < 2 {
		return rows, nil
	}
	maxK := maxInt(contDeriv)

	for i := 1; i < nseg; i++ {
		dt1 := durations[i-1]
		dt2 := durations[i]
		for k := 0; k <= maxK; k++ {
			bEnd, err := eng.Row(1, k)
			if err != nil {
				return nil, err
			}
			bStart, err := eng.Row(0, k)
			if err != nil {
				return nil, err
			}
			scaledEnd := scaleRow(bEnd, 1/basis.Pow(dt1, k))
			scaledStart := scaleRow(bStart, 1/basis.Pow(dt2, k))

			for j := 0; j < d; j++ {
				if k > contDeriv[j] {
					continue
				}
				row := rows.newRow()
				place(row, FlatIndex(d, n, j, i-1), scaledEnd)
				negStart := scaleRow(scaledStart, -1)
				addAt(row, FlatIndex(d, n, j, i), negStart)
				rows.addRow(row, 0)
			}
		}
	}
	return rows, nil
}

func scaleRow(row []float64, factor float64) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = v * factor
	}
	return out
}

func addAt(row []float64, offset int, vals []float64) {
	for i, v := range vals {
		row[offset+i] += v
	}
}
