package polyat

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	math2 "github.com/liserjrqlxue/goUtil/math"
)

// ErrNoFastqFiles is returned when the input directory holds no file with a
// recognized suffix, or when every discovered file failed to scan.
var ErrNoFastqFiles = errors.New("no FASTQ/FASTQ.GZ files found")

// Batch scans every eligible FASTQ file of one input directory.
type Batch struct {
	InputDir string
	// nil or empty means DefaultThresholds
	Thresholds Thresholds
	// worker pool size, 0 means min(#files, GOMAXPROCS)
	Threads int
}

// Row is one scanned file plus its derived percentages, two decimals.
type Row struct {
	*FileStats
	Percents []string
}

// AggregateReport is the complete, name-sorted result set of one run.
// Immutable once built; owned by the report writers afterwards.
type AggregateReport struct {
	Thresholds Thresholds
	Rows       []*Row
}

// Percent formats count/total*100 with two decimals, "0.00" when total is 0.
func Percent(count, total int) string {
	if total == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", math2.DivisionInt(count, total)*100)
}

// FindFastqFiles lists the eligible files of InputDir, sorted by name.
func (batch *Batch) FindFastqFiles() ([]string, error) {
	entries, err := os.ReadDir(batch.InputDir)
	if err != nil {
		return nil, fmt.Errorf("input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if HasFastqSuffix(entry.Name()) {
			files = append(files, filepath.Join(batch.InputDir, entry.Name()))
		}
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, ErrNoFastqFiles
	}
	return files, nil
}

// Run scans all eligible files with a bounded worker pool and merges the
// results into a report sorted by file name regardless of completion order.
// Files that fail to decode or parse are skipped with a warning naming the
// file; Run fails only when nothing succeeds.
func (batch *Batch) Run() (*AggregateReport, error) {
	files, err := batch.FindFastqFiles()
	if err != nil {
		return nil, err
	}

	if len(batch.Thresholds) == 0 {
		batch.Thresholds = DefaultThresholds()
	}

	var thread = batch.Threads
	if thread <= 0 {
		thread = min(len(files), runtime.GOMAXPROCS(0))
	}

	var (
		wg       sync.WaitGroup
		chanList = make(chan bool, thread)
		mutex    sync.Mutex
		statsMap = make(map[string]*FileStats, len(files))
	)
	for _, path := range files {
		chanList <- true
		wg.Add(1)
		go func(path string) {
			defer func() {
				wg.Done()
				<-chanList
			}()
			slog.Info("scan fastq", "path", path)
			stats, err := ScanFile(path, batch.Thresholds)
			if err != nil {
				slog.Warn("skip fastq", "path", path, "error", err)
				return
			}
			mutex.Lock()
			statsMap[path] = stats
			mutex.Unlock()
		}(path)
	}
	wg.Wait()

	// files is already name-sorted, so row order is deterministic
	var report = &AggregateReport{Thresholds: batch.Thresholds}
	for _, path := range files {
		var stats, ok = statsMap[path]
		if !ok {
			continue
		}
		var row = &Row{FileStats: stats}
		for _, count := range stats.Counts {
			row.Percents = append(row.Percents, Percent(count, stats.TotalReads))
		}
		report.Rows = append(report.Rows, row)
	}
	if len(report.Rows) == 0 {
		return nil, fmt.Errorf("all %d FASTQ files failed: %w", len(files), ErrNoFastqFiles)
	}
	return report, nil
}

// CombinedHistogram merges the per-file run-length histograms and returns
// zero-filled [length, count] pairs from minLength up to the longest run.
func (report *AggregateReport) CombinedHistogram(minLength int) [][2]int {
	var (
		combined  = make(map[int]int)
		maxLength = 0
	)
	for _, row := range report.Rows {
		for length, count := range row.Histogram {
			combined[length] += count
			if length > maxLength {
				maxLength = length
			}
		}
	}
	var series [][2]int
	for length := minLength; length <= maxLength; length++ {
		series = append(series, [2]int{length, combined[length]})
	}
	return series
}

// HistogramSeries returns the zero-filled [length, count] pairs of one file.
func (stats *FileStats) HistogramSeries(minLength int) [][2]int {
	var maxLength = 0
	for length := range stats.Histogram {
		if length > maxLength {
			maxLength = length
		}
	}
	var series [][2]int
	for length := minLength; length <= maxLength; length++ {
		series = append(series, [2]int{length, stats.Histogram[length]})
	}
	return series
}
