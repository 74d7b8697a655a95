// SPDX-License-Identifier: Apache-2.0

package dupes

import (
	"fmt"
	"io"
)

// WriteReport renders the scored pairs to w, one block per pair: a header
// with the total duplicated-line count, then one line per file showing the
// duplicated percentage of that file.
func WriteReport(w io.Writer, pairs []ScoredPair) error {
	for _, pair := range pairs {
		_, err := fmt.Fprintf(w, "PAIR: %d lines in common:\n  %.1f%% of %s\n  %.1f%% of %s\n\n",
			pair.Lines,
			pair.PercentA*100, pair.PathA,
			pair.PercentB*100, pair.PathB)
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
