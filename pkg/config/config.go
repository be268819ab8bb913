// Package config holds CLI configuration for report generation and
// the optional YAML config file that supplies organization defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults matching the documented CLI contract.
const (
	DefaultTemplate = "REPORT_TEMPLATE.docx"
	DefaultOutput   = "nessus_vuln_report.docx"
)

// Config holds all options for one report run. Flags are parsed into
// this struct; file values fill only what flags left empty.
type Config struct {
	// Input settings
	InputPath string // scan export CSV (positional argument)

	// Report settings
	TemplatePath     string // DOCX template the report is appended to
	OutputPath       string // output file path
	Format           string // docx, pdf (generate) / csv, json (export)
	Title            string // report title (PDF cover)
	Company          string // organization name (PDF cover)
	ExecutiveSummary string // replaces the placeholder summary text

	// Output settings
	Verbose bool // debug-level progress logging
	NoColor bool // disable styled terminal output
}

// File is the YAML config file shape. All fields are optional.
type File struct {
	Template         string `yaml:"template"`
	Output           string `yaml:"output"`
	Title            string `yaml:"title"`
	Company          string `yaml:"company"`
	ExecutiveSummary string `yaml:"executive_summary"`
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return &f, nil
}

// ApplyFile fills empty Config fields from file values. Explicit
// flags always win over the file.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if c.TemplatePath == "" {
		c.TemplatePath = f.Template
	}
	if c.OutputPath == "" {
		c.OutputPath = f.Output
	}
	if c.Title == "" {
		c.Title = f.Title
	}
	if c.Company == "" {
		c.Company = f.Company
	}
	if c.ExecutiveSummary == "" {
		c.ExecutiveSummary = f.ExecutiveSummary
	}
}

// ApplyDefaults fills remaining empty fields with package defaults.
func (c *Config) ApplyDefaults() {
	if c.TemplatePath == "" {
		c.TemplatePath = DefaultTemplate
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutput
	}
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("%w: input file", ErrMissingRequired)
	}
	return nil
}
