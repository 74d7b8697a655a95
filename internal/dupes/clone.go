// SPDX-License-Identifier: Apache-2.0

package dupes

import (
	"errors"
	"fmt"
)

// CloneRecord is one reported instance of duplicated code between two files,
// as it appears in the detector's report after path normalization.
type CloneRecord struct {
	PathA string
	PathB string
	Lines int
}

// AggregatedPair is the merged duplication total across all CloneRecords
// sharing the same file-path pair.
type AggregatedPair struct {
	PathA string
	PathB string
	Lines int
}

// SizedPair is an AggregatedPair with the on-disk line count of each file.
type SizedPair struct {
	AggregatedPair
	SizeA int
	SizeB int
}

// ScoredPair is a SizedPair with the fraction of each file's lines that are
// duplicated, rounded to two decimal places.
type ScoredPair struct {
	SizedPair
	PercentA float64
	PercentB float64
}

// ParseError reports a structural problem in the duplication report: malformed
// XML, a pair element without two file paths, a bad lines attribute, or a path
// missing the expected prefix marker.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "duplication report: " + e.Reason
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}

// ErrZeroLengthFile is returned when a duplication percentage would divide by
// a zero-length file.
var ErrZeroLengthFile = errors.New("cannot compute duplication percentage of a zero-length file")
