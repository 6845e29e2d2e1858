package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/cochange/internal/coupling"
)

// PlotFile is the optional HTML chart artifact name.
const PlotFile = "coupling.html"

const (
	labelFontSize  = 10
	innerLabelSize = 9
	barChartHeight = "600px"
	maxPathLen     = 60
)

// WritePlot renders a horizontal bar chart of the top coupled pairs to
// coupling.html in the output directory.
func (w *Writer) WritePlot(g *coupling.Graph, top int) error {
	path := filepath.Join(w.dir, PlotFile)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	renderErr := renderCouplingChart(g, top, file)

	closeErr := file.Close()

	if renderErr != nil {
		return fmt.Errorf("render %s: %w", path, renderErr)
	}

	if closeErr != nil {
		return fmt.Errorf("close %s: %w", path, closeErr)
	}

	w.logger.Debug("wrote artifact", "path", path)

	return nil
}

func renderCouplingChart(g *coupling.Graph, top int, out io.Writer) error {
	couples := coupling.RankedEdges(g)

	shown := min(len(couples), top)
	labels := make([]string, shown)
	values := make([]opts.BarData, shown)

	for i, cp := range couples[:shown] {
		// Reverse so the strongest pair lands on top of the chart.
		labels[shown-1-i] = truncatePath(cp.From) + " → " + truncatePath(cp.To)
		values[shown-1-i] = opts.BarData{Value: cp.Weight}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Top file couples",
			Subtitle: "Most frequently co-changed file pairs across the commit window",
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: barChartHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithGridOpts(opts.Grid{Left: "35%", Right: "5%", Top: "60", Bottom: "10%"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "value",
			AxisLabel: &opts.AxisLabel{FontSize: labelFontSize},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category", Data: labels,
			AxisLabel: &opts.AxisLabel{FontSize: labelFontSize},
		}),
	)

	bar.AddSeries("Co-changes", values,
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "right",
			FontSize: innerLabelSize,
		}),
	)

	err := bar.Render(out)
	if err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}

	return nil
}

func truncatePath(path string) string {
	if len(path) <= maxPathLen {
		return path
	}

	return "…" + path[len(path)-maxPathLen:]
}
