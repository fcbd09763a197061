package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"PolyAT/pkg/polyat"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input directory with .fastq/.fastq.gz/.fq/.fq.gz files",
	)
	inputLong = flag.String(
		"input",
		"",
		"same as -i",
	)
	output = flag.String(
		"o",
		"",
		"output directory for polyA_counts.txt and polyA_report.html",
	)
	outputLong = flag.String(
		"output",
		"",
		"same as -o",
	)
	thread = flag.Int(
		"t",
		0,
		"threads used, default min(#fastq, GOMAXPROCS)",
	)
	debug = flag.Bool(
		"debug",
		false,
		"debug logging",
	)
)

func main() {
	flag.Parse()
	now := time.Now()

	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if *input == "" {
		*input = *inputLong
	}
	if *output == "" {
		*output = *outputLong
	}
	if *input == "" || *output == "" {
		flag.PrintDefaults()
		log.Fatal("-i/-o required!")
	}

	info, err := os.Stat(*input)
	if err != nil {
		log.Fatalf("input directory: %v", err)
	}
	if !info.IsDir() {
		log.Fatalf("input path is not a directory: %s", *input)
	}
	simpleUtil.CheckErr(os.MkdirAll(*output, 0755))

	var batch = &polyat.Batch{
		InputDir:   *input,
		Thresholds: polyat.DefaultThresholds(),
		Threads:    *thread,
	}
	report, err := batch.Run()
	if err != nil {
		log.Fatalf("scan %s: %v", *input, err)
	}
	if err := report.WriteArtifacts(*output); err != nil {
		log.Fatalf("write report: %v", err)
	}

	slog.Info("Done", "files", len(report.Rows), "time", time.Since(now))
}
