// SPDX-License-Identifier: Apache-2.0

package dupes

import (
	"fmt"
	"math"
	"sort"
)

// Score computes the fraction of each file's lines that are duplicated,
// independently per file, rounded to two decimal places. A zero-length file
// yields an error wrapping ErrZeroLengthFile instead of Inf or NaN.
func Score(pair SizedPair) (ScoredPair, error) {
	if pair.SizeA == 0 {
		return ScoredPair{}, fmt.Errorf("%s: %w", pair.PathA, ErrZeroLengthFile)
	}
	if pair.SizeB == 0 {
		return ScoredPair{}, fmt.Errorf("%s: %w", pair.PathB, ErrZeroLengthFile)
	}
	return ScoredPair{
		SizedPair: pair,
		PercentA:  round2(float64(pair.Lines) / float64(pair.SizeA)),
		PercentB:  round2(float64(pair.Lines) / float64(pair.SizeB)),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SortPairs orders pairs ascending by the first file's duplication
// percentage. The sort is stable: ties keep their aggregation order.
func SortPairs(pairs []ScoredPair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].PercentA < pairs[j].PercentA
	})
}
