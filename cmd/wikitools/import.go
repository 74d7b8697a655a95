// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wikitoolsproj/wikitools/internal/config"
	"github.com/wikitoolsproj/wikitools/internal/mediawiki"
	"github.com/wikitoolsproj/wikitools/internal/wikiimport"
)

var importConfigPath string

var importCmd = &cobra.Command{
	Use:   "import <csv> <site-host> <username> <password>",
	Short: "Create one wiki page per CSV row, plus TOC and category pages",
	Long: `Parses a CSV and turns each data row into a wiki page. The first
row names the columns; each later row becomes a page titled from its
first cell, with one section per non-empty cell and the last cell
recorded as the page's category.

The site host should look something like "localhost/mediawiki". Plain
http is used by default since local sites rarely speak HTTPS.

The import is meant to run once per CSV/wiki pair. Running it a second
time against the same wiki overwrites the pages it created.`,
	Args: cobra.ExactArgs(4),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importConfigPath, "config", "c", "", "path to a YAML import config")
}

func runImport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	ctx := cmd.Context()

	cfg, err := config.Load(importConfigPath)
	if err != nil {
		return err
	}

	csvFile, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer csvFile.Close()

	rows, err := wikiimport.ReadRows(csvFile)
	if err != nil {
		return err
	}

	client, err := mediawiki.New(cfg.Scheme, args[1], cfg.SitePath, logger)
	if err != nil {
		return err
	}
	if err := client.Login(ctx, args[2], args[3]); err != nil {
		return err
	}

	return wikiimport.NewImporter(client, cfg, logger).Run(ctx, rows)
}
