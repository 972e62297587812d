// Package report renders mined itemset collections for human and
// machine consumption: markdown tables, basket-style CSV, and JSON.
// All output orders rows by (order, canonical itemset), so repeated runs
// over the same input produce byte-identical reports.
package report

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/tbeaumont/lattice-miner/mining"
)

// TableFormatter provides utilities for formatting itemset collections
// as tables.
type TableFormatter struct {
	dict *mining.Dictionary
}

// NewTableFormatter creates a table formatter rendering item names from
// the given dictionary.
func NewTableFormatter(dict *mining.Dictionary) *TableFormatter {
	return &TableFormatter{dict: dict}
}

// Format renders a collection or reducer view as a markdown table with
// itemset, order, raw count and support columns.
func (tf *TableFormatter) Format(src mining.ItemsetSource) string {
	entries := src.Entries()
	if len(entries) == 0 {
		return "_Empty collection_"
	}

	tableString := &strings.Builder{}

	alignment := []tw.Align{tw.AlignNone, tw.AlignNone, tw.AlignNone, tw.AlignNone}
	table := tablewriter.NewTable(tableString,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"itemset", "order", "count", "support"})

	total := src.Total()
	for _, e := range entries {
		table.Append([]string{
			e.Set.Names(tf.dict),
			fmt.Sprintf("%d", e.Set.Order()),
			fmt.Sprintf("%d", e.Count),
			formatSupport(e.Count, total),
		})
	}
	table.Render()

	tableString.WriteString(fmt.Sprintf("\n_%d itemsets_\n", len(entries)))
	return tableString.String()
}

// formatSupport renders a support fraction for display. Rounding happens
// only here, never before a comparison.
func formatSupport(count, total int) string {
	if total == 0 {
		return "0.0000"
	}
	return fmt.Sprintf("%.4f", float64(count)/float64(total))
}
