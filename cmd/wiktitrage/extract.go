// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/wiktitrage/internal/clipboard"
	"github.com/pdiddy/wiktitrage/internal/extract"
	"github.com/pdiddy/wiktitrage/internal/logging"
	"github.com/pdiddy/wiktitrage/internal/source"
	"github.com/pdiddy/wiktitrage/internal/wikitext"
)

var extractCmd = &cobra.Command{
	Use:   "extract [word]",
	Short: "Print the etymologies of a word without starting a session",
	Long: `Extract fetches the Wiktionary article for a word (default: the
clipboard text) and prints the etymology entries of every returned page as
a table, JSON, or YAML. Pages without an etymology are listed with no
entries.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("format", "table", "output format: table, json, or yaml")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	log := logging.New(cfg.Log, os.Stderr)

	term, err := resolveTerm(args, clipboard.Default())
	if err != nil {
		return err
	}

	article, err := source.NewClient(cfg.Source, nil, log).Fetch(cmd.Context(), term)
	if err != nil {
		return err
	}

	results := extract.All(article, wikitext.Default.WithMarkers(cfg.Source.Markers))
	sortPages(results)
	return writeEntries(cmd.OutOrStdout(), results, format)
}

// sortPages orders pages by title then ID so output is stable.
func sortPages(results []extract.PageEntries) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Page.Title != results[j].Page.Title {
			return results[i].Page.Title < results[j].Page.Title
		}
		return results[i].Page.ID < results[j].Page.ID
	})
}

func writeEntries(w io.Writer, results []extract.PageEntries, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		data, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		_, err := io.WriteString(w, renderTable(results))
		return err
	}
}

func renderTable(results []extract.PageEntries) string {
	found := 0
	for _, r := range results {
		found += len(r.Entries)
	}
	if found == 0 {
		return "No etymology found.\n"
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Page", "Language", "Etymology"})

	n := 0
	for _, r := range results {
		for _, e := range r.Entries {
			n++
			tw.AppendRow(table.Row{n, r.Page.Title, e.LanguageName(), e.Description})
		}
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, WidthMax: 72},
	})

	var b strings.Builder
	b.WriteString(tw.Render())
	fmt.Fprintf(&b, "\n\n%d entries\n", found)
	return b.String()
}
