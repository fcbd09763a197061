package polyat

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func testReport(t *testing.T) *AggregateReport {
	t.Helper()
	var dir = t.TempDir()
	writeFile(t, dir, "s1.fastq",
		fastqRecord("r1", strings.Repeat("A", 15)+"CGCG")+
			fastqRecord("r2", "ACGTACGT"))
	writeFile(t, dir, "s2.fq",
		fastqRecord("r1", "CG"+strings.Repeat("T", 20)+"CG"))

	var batch = &Batch{InputDir: dir, Thresholds: DefaultThresholds()}
	report, err := batch.Run()
	if err != nil {
		t.Fatal(err)
	}
	return report
}

func TestCountsHeader(t *testing.T) {
	var report = &AggregateReport{Thresholds: DefaultThresholds()}
	var want = []string{
		"file", "total_reads",
		"count_≥10nt", "pct_≥10nt",
		"count_≥15nt", "pct_≥15nt",
		"count_≥20nt", "pct_≥20nt",
	}
	if got := report.CountsHeader(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWriteArtifacts(t *testing.T) {
	var (
		report = testReport(t)
		outDir = t.TempDir()
	)
	if err := report.WriteArtifacts(outDir); err != nil {
		t.Fatal(err)
	}

	t.Run("counts table", func(t *testing.T) {
		bts, err := os.ReadFile(filepath.Join(outDir, CountsTxt))
		if err != nil {
			t.Fatal(err)
		}
		var want = "file\ttotal_reads\t" +
			"count_≥10nt\tpct_≥10nt\tcount_≥15nt\tpct_≥15nt\tcount_≥20nt\tpct_≥20nt\n" +
			"s1.fastq\t2\t1\t50.00\t1\t50.00\t0\t0.00\n" +
			"s2.fq\t1\t1\t100.00\t1\t100.00\t1\t100.00\n"
		if string(bts) != want {
			t.Errorf("got:\n%s\nwant:\n%s", bts, want)
		}
	})

	t.Run("html report", func(t *testing.T) {
		bts, err := os.ReadFile(filepath.Join(outDir, ReportHTML))
		if err != nil {
			t.Fatal(err)
		}
		var html = string(bts)
		for _, want := range []string{
			"s1.fastq",
			"s2.fq",
			"polyA/T Summary",
			"data-col=",
			"<canvas",
			"<svg",
			"count_≥20nt",
			"data-download-table='polyat-summary-table'",
			"data-download-table-pdf='polyat-position-table'",
			"polyA_counts_table.tsv",
			"polyA_offsets_table.tsv",
			"id='download-combined-histogram-pdf'",
			"function canvasToPdfBytes",
			"function tableToTSV",
		} {
			if !strings.Contains(html, want) {
				t.Errorf("report html misses %q", want)
			}
		}
	})

	t.Run("histogram table", func(t *testing.T) {
		bts, err := os.ReadFile(filepath.Join(outDir, HistogramTxt))
		if err != nil {
			t.Fatal(err)
		}
		var lines = strings.Split(strings.TrimSuffix(string(bts), "\n"), "\n")
		if lines[0] != "Sample\tRun_Length\tRead_Count" {
			t.Errorf("got header %q", lines[0])
		}
		// s1 has one run of 15, s2 one run of 20, both zero-filled from 10
		if !strings.Contains(string(bts), "s1\t15\t1\n") {
			t.Errorf("histogram misses s1 run of 15:\n%s", bts)
		}
		if !strings.Contains(string(bts), "s2\t20\t1\n") {
			t.Errorf("histogram misses s2 run of 20:\n%s", bts)
		}
	})

	t.Run("supplemental artifacts", func(t *testing.T) {
		for _, name := range []string{HistogramHTML, SummaryXlsx} {
			if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
				t.Errorf("missing %s: %v", name, err)
			}
		}
	})
}

func TestWriteArtifactsBadDir(t *testing.T) {
	var report = testReport(t)
	var err = report.WriteArtifacts(filepath.Join(t.TempDir(), "missing", "deeper"))
	if err == nil {
		t.Fatal("expected an error for a missing output directory")
	}
}

func TestOffsetsRow(t *testing.T) {
	t.Run("no runs", func(t *testing.T) {
		var row = &Row{FileStats: &FileStats{Sample: "s"}}
		var want = []string{"s", "0", "0.00", "0.00"}
		if got := row.OffsetsRow(); !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("mean and median", func(t *testing.T) {
		var row = &Row{FileStats: &FileStats{
			Sample:  "s",
			Offsets: []int{0, 2, 10},
		}}
		var want = []string{"s", "3", "4.00", "2.00"}
		if got := row.OffsetsRow(); !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("even count median", func(t *testing.T) {
		var row = &Row{FileStats: &FileStats{
			Sample:  "s",
			Offsets: []int{1, 2, 3, 10},
		}}
		if got := row.OffsetsRow()[3]; got != "2.50" {
			t.Errorf("got median %q, want 2.50", got)
		}
	})
}
