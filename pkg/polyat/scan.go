package polyat

import (
	"path/filepath"
	"strings"
)

// recognized input suffixes, case-sensitive; longest first so SampleName
// strips ".fastq.gz" before ".gz" could split it
var fastqSuffixes = []string{".fastq.gz", ".fq.gz", ".fastq", ".fq"}

// HasFastqSuffix reports whether name ends in one of the recognized suffixes.
func HasFastqSuffix(name string) bool {
	for _, suffix := range fastqSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// SampleName strips the recognized FASTQ suffix from the base file name.
func SampleName(path string) string {
	var name = filepath.Base(path)
	for _, suffix := range fastqSuffixes {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}

// FileStats holds the per-file counts of one scan.
type FileStats struct {
	Sample string
	Path   string

	TotalReads int
	// one slot per threshold; each read adds at most 1 per slot
	Counts []int

	// runs at least as long as the lowest threshold:
	// run length -> read count, and per run the distance of the longest
	// run to the nearest read end
	Histogram map[int]int
	Offsets   []int
}

// ScanFile drives Decoder, Scanner and detector over one FASTQ file.
// thresholds must be non-empty; its lowest value gates the histogram.
// A DecodeError or FormatError aborts this file only; the caller skips it.
func ScanFile(path string, thresholds Thresholds) (*FileStats, error) {
	dec, err := OpenFastq(path)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var stats = &FileStats{
		Sample:    SampleName(path),
		Path:      path,
		Counts:    make([]int, len(thresholds)),
		Histogram: make(map[int]int),
	}
	var (
		minLength = thresholds[0]
		scanner   = NewScanner(dec)
	)
	for {
		rec, err := scanner.Next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			break
		}
		stats.TotalReads++

		for i, hit := range DetectRuns(rec.Seq, thresholds) {
			if hit {
				stats.Counts[i]++
			}
		}

		var longest, start = LongestRun(rec.Seq)
		if longest >= minLength {
			stats.Histogram[longest]++
			var endOffset = len(rec.Seq) - (start + longest)
			stats.Offsets = append(stats.Offsets, min(start, endOffset))
		}
	}
	return stats, nil
}
