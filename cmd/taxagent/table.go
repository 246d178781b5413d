package main

import (
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/ukaji3/taxagent-go/pkg/taxagent"
)

// renderSummary lists the files of a run with their record counts.
func renderSummary(result *taxagent.Result, dryRun bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if dryRun {
		tw.SetTitle("Dry run: no files written")
	}
	tw.AppendHeader(table.Row{"Part", "File", "Records"})

	for _, b := range result.Batches {
		part := "-"
		if b.Part > 0 {
			part = strconv.Itoa(b.Part)
		}
		tw.AppendRow(table.Row{part, filepath.Base(b.Path), len(b.Persons)})
	}
	tw.AppendFooter(table.Row{"", "Total", result.Persons})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
