package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/nessdoc/nessdoc/pkg/config"
	"github.com/nessdoc/nessdoc/pkg/docx"
	"github.com/nessdoc/nessdoc/pkg/input"
	"github.com/nessdoc/nessdoc/pkg/output"
	"github.com/nessdoc/nessdoc/pkg/report"
	"github.com/nessdoc/nessdoc/pkg/ui"
)

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	var noColor, verbose bool
	fs.BoolVar(&noColor, "no-color", false, "disable styled output")
	fs.BoolVar(&verbose, "verbose", false, "debug logging")
	fs.BoolVar(&verbose, "v", false, "debug logging (shorthand)")
	inputPath := parseInput(fs, args)

	setupLogging(verbose)

	cfg := &config.Config{InputPath: inputPath}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "usage: nessdoc stats [flags] <input.csv>")
		fatal("parse flags", err)
	}

	findings, err := input.LoadFindings(cfg.InputPath)
	if err != nil {
		fatal("load scan export", err)
	}

	rep := report.Build(findings)
	fmt.Print(ui.FormatSummary(rep, ui.ColorEnabled() && !noColor))
}

func runTemplate(args []string) {
	fs := flag.NewFlagSet("template", flag.ExitOnError)
	var outputPath string
	fs.StringVar(&outputPath, "output", config.DefaultTemplate, "template output path")
	fs.Parse(args)

	setupLogging(false)

	doc, err := docx.New()
	if err != nil {
		fatal("build template", err)
	}
	if err := doc.SaveTo(outputPath); err != nil {
		fatal("save template", err)
	}
	slog.Info("starter template saved", "path", outputPath)
}

func printFormats() {
	fmt.Printf("%sREPORT FORMATS (generate -format):%s\n", ui.Bold, ui.Reset)
	for _, f := range output.ReportFormats() {
		fmt.Printf("  %s\n", f)
	}
	fmt.Printf("%sEXPORT FORMATS (export -format):%s\n", ui.Bold, ui.Reset)
	for _, f := range output.ExportFormats() {
		fmt.Printf("  %s\n", f)
	}
}
