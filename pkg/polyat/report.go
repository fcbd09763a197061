package polyat

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	math2 "github.com/liserjrqlxue/goUtil/math"
)

// output artifact names
const (
	CountsTxt     = "polyA_counts.txt"
	ReportHTML    = "polyA_report.html"
	HistogramTxt  = "polyA_histogram.txt"
	HistogramHTML = "polyA_histogram.html"
	SummaryXlsx   = "polyA_summary.xlsx"
)

// CountsHeader is the polyA_counts.txt header row: file, total_reads, then
// count/pct column pairs per threshold.
func (report *AggregateReport) CountsHeader() []string {
	var header = []string{"file", "total_reads"}
	for _, t := range report.Thresholds {
		header = append(header,
			fmt.Sprintf("count_≥%dnt", t),
			fmt.Sprintf("pct_≥%dnt", t),
		)
	}
	return header
}

// CountsRow is one polyA_counts.txt row, in CountsHeader order.
func (row *Row) CountsRow() []string {
	var fields = []string{
		filepath.Base(row.Path),
		fmt.Sprintf("%d", row.TotalReads),
	}
	for i, count := range row.Counts {
		fields = append(fields, fmt.Sprintf("%d", count), row.Percents[i])
	}
	return fields
}

func (report *AggregateReport) writeCounts(w io.Writer) error {
	if err := writeTSV(w, report.CountsHeader()); err != nil {
		return err
	}
	for _, row := range report.Rows {
		if err := writeTSV(w, row.CountsRow()); err != nil {
			return err
		}
	}
	return nil
}

func (report *AggregateReport) writeHistogram(w io.Writer) error {
	if err := writeTSV(w, []string{"Sample", "Run_Length", "Read_Count"}); err != nil {
		return err
	}
	var minLength = report.Thresholds[0]
	for _, row := range report.Rows {
		for _, pair := range row.HistogramSeries(minLength) {
			err := writeTSV(w, []string{
				row.Sample,
				fmt.Sprintf("%d", pair[0]),
				fmt.Sprintf("%d", pair[1]),
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTSV(w io.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if _, err := io.WriteString(w, "\t"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, field); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeTemp writes one artifact next to its final path and returns the
// temporary name, leaving the rename to the caller so that sibling artifacts
// appear together or not at all.
func writeTemp(path string, write func(io.Writer) error) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".")
	if err != nil {
		return "", err
	}
	var bw = bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// WriteArtifacts writes every report artifact into outputDir. The counts
// table and the HTML report are staged as temporary files first and renamed
// into place together, so a failed run never leaves one of the pair looking
// complete. The histogram table, the echarts page and the xlsx summary
// follow.
func (report *AggregateReport) WriteArtifacts(outputDir string) error {
	var (
		countsPath = filepath.Join(outputDir, CountsTxt)
		htmlPath   = filepath.Join(outputDir, ReportHTML)
	)

	countsTmp, err := writeTemp(countsPath, report.writeCounts)
	if err != nil {
		return fmt.Errorf("write %s: %w", CountsTxt, err)
	}
	htmlTmp, err := writeTemp(htmlPath, report.writeHTML)
	if err != nil {
		os.Remove(countsTmp)
		return fmt.Errorf("write %s: %w", ReportHTML, err)
	}
	if err := os.Rename(countsTmp, countsPath); err != nil {
		os.Remove(countsTmp)
		os.Remove(htmlTmp)
		return fmt.Errorf("write %s: %w", CountsTxt, err)
	}
	if err := os.Rename(htmlTmp, htmlPath); err != nil {
		os.Remove(htmlTmp)
		return fmt.Errorf("write %s: %w", ReportHTML, err)
	}
	slog.Info("report written", "counts", countsPath, "html", htmlPath)

	var histPath = filepath.Join(outputDir, HistogramTxt)
	histTmp, err := writeTemp(histPath, report.writeHistogram)
	if err != nil {
		return fmt.Errorf("write %s: %w", HistogramTxt, err)
	}
	if err := os.Rename(histTmp, histPath); err != nil {
		os.Remove(histTmp)
		return fmt.Errorf("write %s: %w", HistogramTxt, err)
	}

	report.PlotHistogram(filepath.Join(outputDir, HistogramHTML))
	report.WriteXlsx(filepath.Join(outputDir, SummaryXlsx))
	return nil
}

// OffsetsRow summarizes the nearest-end offsets of one file's qualifying
// runs: run count, mean offset, median offset.
func (row *Row) OffsetsRow() []string {
	var n = len(row.Offsets)
	if n == 0 {
		return []string{row.Sample, "0", "0.00", "0.00"}
	}
	var sum = 0
	for _, offset := range row.Offsets {
		sum += offset
	}
	return []string{
		row.Sample,
		fmt.Sprintf("%d", n),
		fmt.Sprintf("%.2f", math2.DivisionInt(sum, n)),
		fmt.Sprintf("%.2f", medianInt(row.Offsets)),
	}
}

func medianInt(vs []int) float64 {
	var sorted = make([]int, len(vs))
	copy(sorted, vs)
	sort.Ints(sorted)
	var n = len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
