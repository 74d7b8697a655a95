// SPDX-License-Identifier: Apache-2.0

package wikiimport

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadRows reads all CSV records from r. Rows may have differing widths; the
// width check against the header happens later, per row, so the error can
// name the offending row.
func ReadRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}
