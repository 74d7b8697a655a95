// SPDX-License-Identifier: Apache-2.0

package dupes

// AggregateOptions controls pair matching.
type AggregateOptions struct {
	// OrderedPairs treats (A,B) and (B,A) as distinct pairs, matching the
	// order in which the report names the files. The default canonicalizes
	// each pair lexicographically before matching, so duplication between
	// the same two files is always merged regardless of report order.
	OrderedPairs bool
}

type pairKey struct {
	a, b string
}

// Aggregate merges CloneRecords referring to the same file pair, summing
// their duplicated-line counts. Output order is the first-seen order of each
// distinct pair.
func Aggregate(records []CloneRecord, opts AggregateOptions) []AggregatedPair {
	totals := make(map[pairKey]int, len(records))
	order := make([]pairKey, 0, len(records))

	for _, rec := range records {
		key := pairKey{a: rec.PathA, b: rec.PathB}
		if !opts.OrderedPairs && key.b < key.a {
			key.a, key.b = key.b, key.a
		}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += rec.Lines
	}

	pairs := make([]AggregatedPair, 0, len(order))
	for _, key := range order {
		pairs = append(pairs, AggregatedPair{PathA: key.a, PathB: key.b, Lines: totals[key]})
	}
	return pairs
}
