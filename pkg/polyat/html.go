package polyat

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"
)

//go:embed templates/report.html
var templateFiles embed.FS

var reportTmpl = template.Must(template.ParseFS(templateFiles, "templates/report.html"))

// Column labels one report table column; Type "number" gets a min-value
// filter input, "text" a substring filter.
type Column struct {
	Label string
	Type  string
}

// TableData is one filterable table of the HTML report. A non-empty
// Download adds client-side TSV and PDF export buttons, Download being the
// suggested TSV file name.
type TableData struct {
	ID       string
	Title    string
	Download string
	Columns  []Column
	Rows     [][]string
}

type reportData struct {
	MinLength int
	Summary   TableData
	Positions TableData
	DistSVG   template.HTML

	HistogramJSON template.JS
	SamplesJSON   template.JS
	CombinedJSON  template.JS
}

// writeHTML renders the self-contained report page: the summary table with
// per-column filters, per-sample and combined run-length histograms drawn
// client-side, the percentage-distribution chart and the position-offset
// table.
func (report *AggregateReport) writeHTML(w io.Writer) error {
	var minLength = report.Thresholds[0]

	var summary = TableData{
		ID:       "polyat-summary-table",
		Title:    "polyA/T Summary",
		Download: "polyA_counts_table.tsv",
	}
	for i, label := range report.CountsHeader() {
		var colType = "number"
		if i == 0 {
			colType = "text"
		}
		summary.Columns = append(summary.Columns, Column{Label: label, Type: colType})
	}
	for _, row := range report.Rows {
		summary.Rows = append(summary.Rows, row.CountsRow())
	}

	var positions = TableData{
		ID:       "polyat-position-table",
		Title:    "polyA/T Position Offsets",
		Download: "polyA_offsets_table.tsv",
		Columns: []Column{
			{Label: "Sample", Type: "text"},
			{Label: "Detected_Runs", Type: "number"},
			{Label: "Avg_nearest_end_offset", Type: "number"},
			{Label: "Median_nearest_end_offset", Type: "number"},
		},
	}
	for _, row := range report.Rows {
		positions.Rows = append(positions.Rows, row.OffsetsRow())
	}

	var (
		samples []string
		series  = make(map[string][][2]int, len(report.Rows))
	)
	for _, row := range report.Rows {
		samples = append(samples, row.Sample)
		series[row.Sample] = row.HistogramSeries(minLength)
	}

	svg, err := report.distributionSVG()
	if err != nil {
		return err
	}

	return reportTmpl.Execute(w, reportData{
		MinLength:     minLength,
		Summary:       summary,
		Positions:     positions,
		DistSVG:       template.HTML(svg),
		HistogramJSON: jsonJS(series),
		SamplesJSON:   jsonJS(samples),
		CombinedJSON:  jsonJS(report.CombinedHistogram(minLength)),
	})
}

func jsonJS(v interface{}) template.JS {
	bts, err := json.Marshal(v)
	if err != nil {
		return template.JS("null")
	}
	return template.JS(bts)
}
