// SPDX-License-Identifier: Apache-2.0

package dupes

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileSizes resolves normalized report paths to on-disk line counts under a
// source tree root.
type FileSizes struct {
	Root string
}

// Resolve attaches the line count of both files to the pair. A missing file
// surfaces as an error wrapping os.ErrNotExist.
func (s *FileSizes) Resolve(pair AggregatedPair) (SizedPair, error) {
	sizeA, err := s.countFile(pair.PathA)
	if err != nil {
		return SizedPair{}, err
	}
	sizeB, err := s.countFile(pair.PathB)
	if err != nil {
		return SizedPair{}, err
	}
	return SizedPair{AggregatedPair: pair, SizeA: sizeA, SizeB: sizeB}, nil
}

func (s *FileSizes) countFile(path string) (int, error) {
	f, err := os.Open(filepath.Join(s.Root, path))
	if err != nil {
		return 0, fmt.Errorf("count lines of %s: %w", path, err)
	}
	defer f.Close()

	n, err := countLines(f)
	if err != nil {
		return 0, fmt.Errorf("count lines of %s: %w", path, err)
	}
	return n, nil
}

// countLines counts text lines the way a line-by-line read does: a trailing
// newline does not add a line, but a final unterminated line counts.
func countLines(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	lines := 0
	for {
		chunk, err := br.ReadString('\n')
		if len(chunk) > 0 {
			lines++
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return 0, err
		}
	}
}
