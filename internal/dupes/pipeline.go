// SPDX-License-Identifier: Apache-2.0

package dupes

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// Pipeline runs the full duplication summary: decode the report, aggregate
// per file pair, resolve file sizes under Root, score, sort and render.
type Pipeline struct {
	// Marker is the path-prefix marker stripped from every reported path.
	Marker string
	// OrderedPairs disables canonical pair matching, see AggregateOptions.
	OrderedPairs bool
	// Root is the source tree the reported paths are resolved against.
	Root   string
	Out    io.Writer
	Logger *zap.Logger
}

func (p *Pipeline) Run(ctx context.Context, report io.Reader) error {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	marker := p.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	records, err := DecodeReport(report, marker)
	if err != nil {
		return err
	}
	logger.Debug("decoded duplication report", zap.Int("records", len(records)))

	if !p.OrderedPairs {
		logger.Info("merging pairs regardless of report order; pass --ordered-pairs to match the report's file order exactly")
	}
	pairs := Aggregate(records, AggregateOptions{OrderedPairs: p.OrderedPairs})

	sizes := &FileSizes{Root: p.Root}
	scored := make([]ScoredPair, 0, len(pairs))
	for _, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}
		sized, err := sizes.Resolve(pair)
		if err != nil {
			return err
		}
		sp, err := Score(sized)
		if err != nil {
			return err
		}
		scored = append(scored, sp)
	}

	SortPairs(scored)
	return WriteReport(p.Out, scored)
}
