package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nessdoc/nessdoc/pkg/config"
	"github.com/nessdoc/nessdoc/pkg/input"
	"github.com/nessdoc/nessdoc/pkg/output"
	"github.com/nessdoc/nessdoc/pkg/output/writers"
	"github.com/nessdoc/nessdoc/pkg/report"
)

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	var (
		formatName string
		outputPath string
		noHeader   bool
		compact    bool
		verbose    bool
	)
	fs.StringVar(&formatName, "format", "csv", "export format: csv, json")
	fs.StringVar(&outputPath, "output", "", "output file (default: stdout)")
	fs.BoolVar(&noHeader, "no-header", false, "omit the CSV header row")
	fs.BoolVar(&compact, "compact", false, "compact JSON output")
	fs.BoolVar(&verbose, "verbose", false, "debug logging")
	fs.BoolVar(&verbose, "v", false, "debug logging (shorthand)")
	inputPath := parseInput(fs, args)

	setupLogging(verbose)

	format, err := output.ParseFormat(formatName, output.ExportFormats())
	if err != nil {
		fatal("parse flags", err)
	}

	cfg := &config.Config{InputPath: inputPath}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "usage: nessdoc export [flags] <input.csv>")
		fatal("parse flags", err)
	}

	findings, err := input.LoadFindings(cfg.InputPath)
	if err != nil {
		fatal("load scan export", err)
	}
	slog.Info("loaded scan export", "path", cfg.InputPath, "findings", len(findings))

	var dst io.Writer = os.Stdout
	var outFile *os.File
	toFile := outputPath != ""
	if toFile {
		f, err := os.Create(outputPath)
		if err != nil {
			fatal("create output", err)
		}
		outFile = f
		dst = f
	}

	var w output.Writer
	switch format {
	case output.FormatCSV:
		w = writers.NewCSVWriter(dst, writers.CSVOptions{
			IncludeHeader:    !noHeader,
			ExcelCompatible:  toFile,
			SanitizeFormulas: true,
		})
	case output.FormatJSON:
		w = writers.NewJSONWriter(dst, writers.JSONOptions{Pretty: !compact})
	}

	rep := report.Build(findings)
	if err := w.Write(rep); err != nil {
		fatal("export findings", err)
	}
	if err := saveReport(w, outFile); err != nil {
		fatal("save export", err)
	}
	if toFile {
		slog.Info("export saved", "path", outputPath, "format", format)
	}
}
