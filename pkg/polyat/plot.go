package polyat

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	math2 "github.com/liserjrqlxue/goUtil/math"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotHistogram renders the combined run-length histogram as an echarts bar
// page.
func (report *AggregateReport) PlotHistogram(path string) {
	var (
		bar    = charts.NewBar()
		output = osUtil.Create(path)
	)
	defer simpleUtil.DeferClose(output)

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "polyA/T Run Length Distribution",
			Subtitle: fmt.Sprintf("runs ≥%d nt, all samples", report.Thresholds[0]),
		}))

	var (
		lengths []int
		items   []opts.BarData
	)
	for _, pair := range report.CombinedHistogram(report.Thresholds[0]) {
		lengths = append(lengths, pair[0])
		items = append(items, opts.BarData{Value: pair[1]})
	}
	bar.SetXAxis(lengths).AddSeries("reads", items)
	simpleUtil.CheckErr(bar.Render(output))
}

var distColors = []color.RGBA{
	{R: 50, G: 100, B: 200, A: 255},
	{R: 200, G: 120, B: 50, A: 255},
	{R: 60, G: 160, B: 80, A: 255},
}

// distributionSVG draws, per threshold, the distribution of per-file
// percentages as an SVG line chart for embedding into the HTML report.
func (report *AggregateReport) distributionSVG() (string, error) {
	var p = plot.New()
	p.Title.Text = "polyA/T Percentage Distribution"
	p.X.Label.Text = "Percent of reads"
	p.Y.Label.Text = "Files"

	const binCount = 20
	const binWidth = 100.0 / binCount

	for i, threshold := range report.Thresholds {
		var counts [binCount]float64
		for _, row := range report.Rows {
			if row.TotalReads == 0 {
				continue
			}
			var pct = math2.DivisionInt(row.Counts[i], row.TotalReads) * 100
			var bin = int(pct / binWidth)
			if bin >= binCount {
				bin = binCount - 1
			}
			counts[bin]++
		}

		var points = make(plotter.XYs, binCount)
		for j := 0; j < binCount; j++ {
			points[j].X = binWidth*float64(j) + binWidth/2
			points[j].Y = counts[j]
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return "", err
		}
		line.LineStyle.Color = distColors[i%len(distColors)]
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("≥%d nt", threshold), line)
	}
	p.Legend.Top = true

	writer, err := p.WriterTo(9*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
