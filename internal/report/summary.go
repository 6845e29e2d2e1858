// Package report prints the end-of-run terminal summary: headline stats and
// a table of the strongest couples.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/cochange/internal/coupling"
)

// Stats summarizes one mining run.
type Stats struct {
	Commits     int
	Transitions int
	Elapsed     time.Duration
}

// Print writes the run summary to w: a colored headline, totals, and the
// top coupled pairs.
func Print(w io.Writer, g *coupling.Graph, stats Stats, top int) {
	headline := color.New(color.FgCyan, color.Bold)
	_, _ = headline.Fprintln(w, "cochange: co-change coupling report")

	edges := coupling.RankedEdges(g)

	fmt.Fprintf(w, "  commits walked: %s\n", humanize.Comma(int64(stats.Commits)))
	fmt.Fprintf(w, "  transitions:    %s\n", humanize.Comma(int64(stats.Transitions)))
	fmt.Fprintf(w, "  files:          %s\n", humanize.Comma(int64(g.Len())))
	fmt.Fprintf(w, "  edges:          %s\n", humanize.Comma(int64(len(edges))))
	fmt.Fprintf(w, "  elapsed:        %s\n", stats.Elapsed.Round(time.Millisecond))

	if top <= 0 || len(edges) == 0 {
		return
	}

	shown := min(len(edges), top)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "From", "To", "Co-changes"})

	for i, edge := range edges[:shown] {
		tw.AppendRow(table.Row{i + 1, edge.From, edge.To, edge.Weight})
	}

	tw.Render()
}
