// SPDX-License-Identifier: Apache-2.0

package wikiimport

import (
	"fmt"
	"strconv"
	"strings"
)

// Section is one section of a wiki page derived from a CSV cell.
type Section struct {
	// Index is the cell's 0-based position in the row, which doubles as
	// the section's position on the page.
	Index   int
	Heading string
	Body    string
}

// PagePlan is everything to write for one CSV data row: the page title, its
// sections in cell order, and the category the row is tagged with.
type PagePlan struct {
	Title    string
	Sections []Section
	// Category is the raw value of the row's last cell, "" when the row
	// has no category cell or it is empty.
	Category string
}

// RowWidthError reports a data row with more cells than the header names.
type RowWidthError struct {
	RowIndex int
	Width    int
	Header   int
}

func (e *RowWidthError) Error() string {
	return fmt.Sprintf("row %d has %d cells but the header names only %d columns", e.RowIndex, e.Width, e.Header)
}

// BuildPage derives the page for one data row. The title is
// titlePrefix + rowIndex + ": " + first cell; every non-empty cell after the
// first becomes a section headed by the matching header column. The last
// cell is wrapped as a category tag instead of written verbatim.
func BuildPage(header, row []string, rowIndex int, titlePrefix string) (PagePlan, error) {
	if len(row) > len(header) {
		return PagePlan{}, &RowWidthError{RowIndex: rowIndex, Width: len(row), Header: len(header)}
	}

	plan := PagePlan{
		Title: titlePrefix + strconv.Itoa(rowIndex) + ": " + row[0],
	}
	for i := 1; i < len(row); i++ {
		cell := row[i]
		if cell == "" {
			continue
		}
		body := cell
		if i == len(row)-1 {
			body = "[[Category:" + cell + "]]"
			plan.Category = cell
		}
		plan.Sections = append(plan.Sections, Section{Index: i, Heading: header[i], Body: body})
	}
	return plan, nil
}

// Body renders the plan's sections as a single page body for a batched edit.
func (p PagePlan) Body() string {
	var b strings.Builder
	for _, sec := range p.Sections {
		b.WriteString("== ")
		b.WriteString(sec.Heading)
		b.WriteString(" ==\n")
		b.WriteString(sec.Body)
		b.WriteString("\n\n")
	}
	return b.String()
}

// CategorySet collects distinct category values in insertion order.
type CategorySet struct {
	seen  map[string]struct{}
	order []string
}

func NewCategorySet() *CategorySet {
	return &CategorySet{seen: make(map[string]struct{})}
}

func (s *CategorySet) Add(name string) {
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.order = append(s.order, name)
}

// Values returns the categories in the order they were first added.
func (s *CategorySet) Values() []string {
	return s.order
}
