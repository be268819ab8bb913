package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/nessdoc/nessdoc/pkg/config"
	"github.com/nessdoc/nessdoc/pkg/docx"
	"github.com/nessdoc/nessdoc/pkg/input"
	"github.com/nessdoc/nessdoc/pkg/output"
	"github.com/nessdoc/nessdoc/pkg/output/writers"
	"github.com/nessdoc/nessdoc/pkg/report"
	"github.com/nessdoc/nessdoc/pkg/ui"
)

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	cfg := &config.Config{}
	var configPath string
	fs.StringVar(&cfg.TemplatePath, "template", "", "DOCX template path")
	fs.StringVar(&cfg.OutputPath, "output", "", "output file path")
	fs.StringVar(&cfg.Format, "format", "docx", "report format: docx, pdf")
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.StringVar(&cfg.Title, "title", "", "report title")
	fs.StringVar(&cfg.Company, "company", "", "organization name")
	fs.StringVar(&cfg.ExecutiveSummary, "summary", "", "executive summary text")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "debug logging (shorthand)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable styled output")
	cfg.InputPath = parseInput(fs, args)

	setupLogging(cfg.Verbose)

	if configPath != "" {
		file, err := config.LoadFile(configPath)
		if err != nil {
			fatal("load config", err)
		}
		cfg.ApplyFile(file)
	}
	hadOutput := cfg.OutputPath != ""
	cfg.ApplyDefaults()

	format, err := output.ParseFormat(cfg.Format, output.ReportFormats())
	if err != nil {
		fatal("parse flags", err)
	}
	// The docx default output name does not fit other formats.
	if format == output.FormatPDF && !hadOutput {
		cfg.OutputPath = strings.TrimSuffix(cfg.OutputPath, ".docx") + ".pdf"
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "usage: nessdoc generate [flags] <input.csv>")
		fatal("parse flags", err)
	}

	findings, err := input.LoadFindings(cfg.InputPath)
	if err != nil {
		fatal("load scan export", err)
	}
	slog.Info("loaded scan export", "path", cfg.InputPath, "findings", len(findings))

	rep := report.Build(findings)
	slog.Info("grouped findings", "hosts", len(rep.Hosts))

	var (
		w       output.Writer
		outFile *os.File
	)
	switch format {
	case output.FormatDocx:
		slog.Info("using report template", "path", cfg.TemplatePath)
		doc, err := docx.Open(cfg.TemplatePath)
		if err != nil {
			fatal("open template", err)
		}
		w = writers.NewDocxWriter(doc, writers.DocxConfig{
			OutputPath:       cfg.OutputPath,
			ExecutiveSummary: cfg.ExecutiveSummary,
		})
	case output.FormatPDF:
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			fatal("create output", err)
		}
		outFile = f
		w = writers.NewPDFWriter(f, writers.PDFConfig{
			Title:            cfg.Title,
			CompanyName:      cfg.Company,
			ExecutiveSummary: cfg.ExecutiveSummary,
		})
	}

	if err := w.Write(rep); err != nil {
		fatal("render report", err)
	}
	if err := saveReport(w, outFile); err != nil {
		fatal("save report", err)
	}

	color := ui.ColorEnabled() && !cfg.NoColor
	fmt.Println(ui.FormatSummary(rep, color))
	slog.Info("report saved", "path", cfg.OutputPath)
}
