// SPDX-License-Identifier: Apache-2.0

// Package wikiimport turns a proposals CSV into wiki pages: one page per data
// row, a table-of-contents page linking them all, and one page per distinct
// category.
//
// The import is meant to run once per CSV/wiki pair; rerunning it against the
// same wiki overwrites the pages it created.
package wikiimport

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wikitoolsproj/wikitools/internal/config"
	"github.com/wikitoolsproj/wikitools/internal/mediawiki"
)

// RemoteStore is the document store the importer writes pages to.
type RemoteStore interface {
	// Edit replaces the whole page body, creating the page if needed.
	Edit(ctx context.Context, title, body string) error
	// EditSection saves one section; section is a decimal index or "new".
	EditSection(ctx context.Context, title, body, section, sectionTitle string) error
}

// Importer drives one import run. The TOC text and the category set are owned
// here rather than living in package state, so a run is self-contained.
type Importer struct {
	store      RemoteStore
	cfg        config.Import
	logger     *zap.Logger
	categories *CategorySet
}

func NewImporter(store RemoteStore, cfg config.Import, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{
		store:      store,
		cfg:        cfg,
		logger:     logger,
		categories: NewCategorySet(),
	}
}

// Run processes the rows: the first row is the header, each later row
// becomes a page. After all rows it writes the TOC page and one empty page
// per distinct category.
func (im *Importer) Run(ctx context.Context, rows [][]string) error {
	if len(rows) == 0 {
		return errors.New("csv has no header row")
	}
	header := rows[0]

	var toc strings.Builder
	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		rowIndex := i + 1
		plan, err := BuildPage(header, row, rowIndex, im.cfg.TitlePrefix)
		if err != nil {
			return err
		}

		im.logger.Info("creating page", zap.String("title", plan.Title))
		if err := im.writePage(ctx, plan); err != nil {
			return err
		}

		toc.WriteString("* [[" + plan.Title + "]] \n")
		if plan.Category != "" {
			im.categories.Add(plan.Category)
		}
	}

	if err := im.store.Edit(ctx, im.cfg.TOCTitle, toc.String()); err != nil {
		return fmt.Errorf("write TOC page %q: %w", im.cfg.TOCTitle, err)
	}

	for _, cat := range im.categories.Values() {
		im.logger.Info("creating category page", zap.String("category", cat))
		// The page body stays empty: the wiki fills the category listing
		// from the pages tagged with it.
		if err := im.store.Edit(ctx, "Category:"+cat, ""); err != nil {
			return fmt.Errorf("write category page %q: %w", cat, err)
		}
	}
	return nil
}

// Categories returns the distinct categories seen so far, in first-seen
// order.
func (im *Importer) Categories() []string {
	return im.categories.Values()
}

func (im *Importer) writePage(ctx context.Context, plan PagePlan) error {
	if im.cfg.BatchWrites {
		if err := im.store.Edit(ctx, plan.Title, plan.Body()); err != nil {
			return fmt.Errorf("write page %q: %w", plan.Title, err)
		}
		return nil
	}

	// Parity mode: one save per non-empty cell, addressed to the section's
	// position. A save addressed to a section the page does not have yet is
	// retried as an append-new-section save.
	for _, sec := range plan.Sections {
		err := im.store.EditSection(ctx, plan.Title, sec.Body, strconv.Itoa(sec.Index), sec.Heading)
		if mediawiki.IsSectionConflict(err) {
			err = im.store.EditSection(ctx, plan.Title, sec.Body, "new", sec.Heading)
		}
		if err != nil {
			return fmt.Errorf("write section %d of %q: %w", sec.Index, plan.Title, err)
		}
	}
	return nil
}
