// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/goccy/go-yaml"
)

// importSchema is the CUE schema the decoded import config is validated
// against before use.
const importSchema = `
#Import: {
	toc_title:    string & !=""
	title_prefix: string & !=""
	scheme:       "http" | "https"
	site_path:    string & =~"^/"
	batch_writes: bool
}
`

// Import configures the CSV-to-wiki import.
type Import struct {
	// TOCTitle is the title of the table-of-contents page listing every
	// page created from the CSV.
	TOCTitle string `yaml:"toc_title" json:"toc_title"`
	// TitlePrefix is prepended, with the row index, to the first cell of
	// each row to form the page title.
	TitlePrefix string `yaml:"title_prefix" json:"title_prefix"`
	// Scheme is the protocol used to reach the wiki. Plain http is the
	// default since the tool is usually pointed at a local site.
	Scheme string `yaml:"scheme" json:"scheme"`
	// SitePath is the path under which the wiki API lives on the host.
	SitePath string `yaml:"site_path" json:"site_path"`
	// BatchWrites saves each page as a single edit built from all of its
	// sections. Setting it false restores one edit per non-empty cell,
	// which is slower but matches the wiki's per-section revision history.
	BatchWrites bool `yaml:"batch_writes" json:"batch_writes"`
}

// Default returns the import settings the tool ships with.
func Default() Import {
	return Import{
		TOCTitle:    "List of Proposals",
		TitlePrefix: "Proposal_",
		Scheme:      "http",
		SitePath:    "/",
		BatchWrites: true,
	}
}

// Load reads a YAML import config from path and validates it. An empty path
// yields the defaults. Keys absent from the file keep their default value.
func Load(path string) (Import, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Import{}, fmt.Errorf("read import config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Import{}, fmt.Errorf("parse import config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Import{}, fmt.Errorf("import config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config against the embedded CUE schema.
func (c Import) Validate() error {
	cctx := cuecontext.New()
	compiled := cctx.CompileString(importSchema)
	if err := compiled.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	schema := compiled.LookupPath(cue.ParsePath("#Import"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("lookup config schema: %w", err)
	}

	if err := schema.Unify(cctx.Encode(c)).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid import config: %w", err)
	}
	return nil
}
