// Command cli is the nessdoc entry point: it turns a Nessus-style CSV
// scan export into a styled DOCX (or PDF) vulnerability report.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/nessdoc/nessdoc/pkg/output"
	"github.com/nessdoc/nessdoc/pkg/ui"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate", "gen":
		runGenerate(os.Args[2:])
	case "export":
		runExport(os.Args[2:])
	case "stats":
		runStats(os.Args[2:])
	case "template":
		runTemplate(os.Args[2:])
	case "formats", "format":
		printFormats()
	case "version", "-version", "--version":
		printVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// parseInput parses a subcommand's flags, accepting the input file
// before or after them, so "generate scan.csv -output q3.docx" works
// the same as "generate -output q3.docx scan.csv". Returns the input
// path, or "" when none was given. Anything positional beyond the
// input file is an error.
func parseInput(fs *flag.FlagSet, args []string) string {
	fs.Parse(args)
	if fs.NArg() == 0 {
		return ""
	}
	in := fs.Arg(0)
	if fs.NArg() > 1 {
		fs.Parse(fs.Args()[1:])
		if fs.NArg() > 0 {
			fmt.Fprintf(os.Stderr, "unexpected argument after input file: %s\n", fs.Arg(0))
			os.Exit(2)
		}
	}
	return in
}

// saveReport flushes the writer, then closes the output file when the
// report went to one. A close failure can lose data, so it surfaces
// like any other save error.
func saveReport(w output.Writer, f *os.File) error {
	if err := w.Close(); err != nil {
		return err
	}
	if f == nil {
		return nil
	}
	return f.Close()
}

// setupLogging installs the process-wide slog handler. Progress goes
// to stderr so stdout stays clean for piped export output.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

// fatal logs the failed stage and exits non-zero. All failure classes
// abort the run; this is a one-shot batch tool.
func fatal(stage string, err error) {
	slog.Error(stage, "error", err)
	os.Exit(1)
}

func printVersion() {
	color := ui.ColorEnabled()
	fmt.Println(ui.Banner(color))
	fmt.Printf("  version:    %s\n", ui.Version)
	fmt.Printf("  commit:     %s\n", ui.Commit)
	fmt.Printf("  build date: %s\n", ui.BuildDate)
}

func printUsage() {
	fmt.Println()
	fmt.Println(ui.Banner(ui.ColorEnabled()))
	fmt.Println()
	fmt.Printf("%sUSAGE:%s\n", ui.Bold, ui.Reset)
	fmt.Println("  nessdoc <command> [flags] <input.csv>")
	fmt.Println()
	fmt.Printf("%sCOMMANDS:%s\n", ui.Bold, ui.Reset)
	fmt.Printf("  %sgenerate%s   Generate a styled report from a scan export\n", ui.Cyan, ui.Reset)
	fmt.Printf("  %sexport%s     Export normalized findings (csv, json)\n", ui.Cyan, ui.Reset)
	fmt.Printf("  %sstats%s      Print a severity summary table\n", ui.Cyan, ui.Reset)
	fmt.Printf("  %stemplate%s   Write a minimal starter report template\n", ui.Cyan, ui.Reset)
	fmt.Printf("  %sformats%s    List output formats\n", ui.Cyan, ui.Reset)
	fmt.Printf("  %sversion%s    Print version information\n", ui.Cyan, ui.Reset)
	fmt.Println()
	fmt.Printf("%sGENERATE FLAGS:%s\n", ui.Bold, ui.Reset)
	fmt.Println("  -template <file>   DOCX template (default: REPORT_TEMPLATE.docx)")
	fmt.Println("  -output <file>     Output path (default: nessus_vuln_report.docx)")
	fmt.Println("  -format <type>     Report format: docx, pdf (default: docx)")
	fmt.Println("  -config <file>     YAML config with template/output/title defaults")
	fmt.Println("  -title <text>      Report title (pdf cover)")
	fmt.Println("  -company <text>    Organization name (pdf cover)")
	fmt.Println("  -summary <text>    Executive summary text")
	fmt.Println("  -v, -verbose       Debug-level progress logging")
	fmt.Println("  -no-color          Disable styled terminal output")
	fmt.Println()
	fmt.Printf("%sEXAMPLES:%s\n", ui.Bold, ui.Reset)
	fmt.Println("  nessdoc generate scan.csv")
	fmt.Println("  nessdoc generate -template corp.docx -output q3.docx scan.csv")
	fmt.Println("  nessdoc generate -format pdf -title \"Q3 External Scan\" scan.csv")
	fmt.Println("  nessdoc export -format json scan.csv")
	fmt.Println("  nessdoc stats scan.csv")
	fmt.Println()
}
