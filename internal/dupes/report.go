// SPDX-License-Identifier: Apache-2.0

package dupes

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// DefaultMarker is the path-prefix marker the duplication detector leaves on
// every reported path when run from a nested working directory. Everything up
// to and including its first occurrence is discarded during normalization.
const DefaultMarker = "../../../"

type reportXML struct {
	Pairs []pairXML `xml:",any"`
}

type pairXML struct {
	Lines    string     `xml:"lines,attr"`
	Children []childXML `xml:",any"`
}

type childXML struct {
	// Path is set only on the file elements; other children (such as the
	// duplicated code fragment) carry no path attribute and are skipped.
	Path string `xml:"path,attr"`
}

// DecodeReport reads a duplication report and returns one CloneRecord per
// reported pair, with both paths normalized against marker. Structural
// problems are reported as *ParseError.
func DecodeReport(r io.Reader, marker string) ([]CloneRecord, error) {
	var doc reportXML
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, parseErrorf("malformed XML: %v", err)
	}

	records := make([]CloneRecord, 0, len(doc.Pairs))
	for i, pair := range doc.Pairs {
		paths := make([]string, 0, 2)
		for _, child := range pair.Children {
			if child.Path != "" {
				paths = append(paths, child.Path)
			}
		}
		if len(paths) < 2 {
			return nil, parseErrorf("pair %d: expected two file paths, found %d", i+1, len(paths))
		}

		lines, err := strconv.Atoi(pair.Lines)
		if err != nil {
			return nil, parseErrorf("pair %d: bad lines attribute %q", i+1, pair.Lines)
		}
		if lines < 1 {
			return nil, parseErrorf("pair %d: lines attribute must be positive, got %d", i+1, lines)
		}

		pathA, err := NormalizePath(paths[0], marker)
		if err != nil {
			return nil, err
		}
		pathB, err := NormalizePath(paths[1], marker)
		if err != nil {
			return nil, err
		}

		records = append(records, CloneRecord{PathA: pathA, PathB: pathB, Lines: lines})
	}
	return records, nil
}

// NormalizePath discards everything up to and including the first occurrence
// of marker. A path without the marker is a *ParseError rather than a silent
// pass-through.
func NormalizePath(path, marker string) (string, error) {
	idx := strings.Index(path, marker)
	if idx < 0 {
		return "", parseErrorf("path %q is missing the prefix marker %q", path, marker)
	}
	return path[idx+len(marker):], nil
}
