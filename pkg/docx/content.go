package docx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// RunStyle controls character formatting for a paragraph's text run.
// The zero value means template defaults.
type RunStyle struct {
	Bold  bool
	Size  int    // points; 0 keeps the style default
	Color string // RRGGBB hex, no leading '#'
	Font  string // e.g. "Aptos"
}

// AddHeading appends a heading paragraph using the template's
// Heading1-4 styles. Levels outside 1-4 clamp.
func (d *Document) AddHeading(text string, level int) {
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}
	p := d.body.CreateElement("w:p")
	pPr := p.CreateElement("w:pPr")
	style := pPr.CreateElement("w:pStyle")
	style.CreateAttr("w:val", fmt.Sprintf("Heading%d", level))
	addRun(p, text, RunStyle{})
}

// AddParagraph appends a body paragraph with the given run style.
func (d *Document) AddParagraph(text string, style RunStyle) {
	p := d.body.CreateElement("w:p")
	addRun(p, text, style)
}

// AddPageBreak appends an explicit page break.
func (d *Document) AddPageBreak() {
	p := d.body.CreateElement("w:p")
	r := p.CreateElement("w:r")
	br := r.CreateElement("w:br")
	br.CreateAttr("w:type", "page")
}

// Table is a table appended to the document body.
type Table struct {
	el   *etree.Element
	rows [][]*Cell
}

// Cell is one table cell. Cells are created with a single empty
// paragraph, as the format requires.
type Cell struct {
	el    *etree.Element
	tcPr  *etree.Element
	first *etree.Element // the initial empty paragraph
	used  bool
}

// AddTable appends a borderless rows x cols table. Finding blocks are
// laid out as single-column tables so each field can carry its own
// cell shading.
func (d *Document) AddTable(rows, cols int) *Table {
	tbl := d.body.CreateElement("w:tbl")

	tblPr := tbl.CreateElement("w:tblPr")
	tblW := tblPr.CreateElement("w:tblW")
	tblW.CreateAttr("w:w", "0")
	tblW.CreateAttr("w:type", "auto")
	borders := tblPr.CreateElement("w:tblBorders")
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		e := borders.CreateElement("w:" + edge)
		e.CreateAttr("w:val", "nil")
	}

	grid := tbl.CreateElement("w:tblGrid")
	for i := 0; i < cols; i++ {
		grid.CreateElement("w:gridCol")
	}

	t := &Table{el: tbl}
	for i := 0; i < rows; i++ {
		tr := tbl.CreateElement("w:tr")
		row := make([]*Cell, 0, cols)
		for j := 0; j < cols; j++ {
			tc := tr.CreateElement("w:tc")
			tcPr := tc.CreateElement("w:tcPr")
			first := tc.CreateElement("w:p")
			row = append(row, &Cell{el: tc, tcPr: tcPr, first: first})
		}
		t.rows = append(t.rows, row)
	}
	return t
}

// Cell returns the cell at (row, col). Out-of-range indexes panic,
// as with any slice; writers build tables with fixed shapes.
func (t *Table) Cell(row, col int) *Cell {
	return t.rows[row][col]
}

// SetShading fills the cell background with an RRGGBB hex color.
func (c *Cell) SetShading(hex string) {
	shd := c.tcPr.CreateElement("w:shd")
	shd.CreateAttr("w:val", "clear")
	shd.CreateAttr("w:color", "auto")
	shd.CreateAttr("w:fill", hex)
}

// AddParagraph writes text into the cell. The first call fills the
// cell's initial paragraph; later calls append new paragraphs.
func (c *Cell) AddParagraph(text string, style RunStyle) {
	p := c.first
	if c.used {
		p = c.el.CreateElement("w:p")
	}
	c.used = true
	addRun(p, text, style)
}

// addRun appends a single styled run. Newlines in text become soft
// line breaks within the run.
func addRun(p *etree.Element, text string, style RunStyle) {
	r := p.CreateElement("w:r")

	if style.Bold || style.Size > 0 || style.Color != "" || style.Font != "" {
		rPr := r.CreateElement("w:rPr")
		if style.Font != "" {
			fonts := rPr.CreateElement("w:rFonts")
			fonts.CreateAttr("w:ascii", style.Font)
			fonts.CreateAttr("w:hAnsi", style.Font)
		}
		if style.Bold {
			rPr.CreateElement("w:b")
		}
		if style.Color != "" {
			color := rPr.CreateElement("w:color")
			color.CreateAttr("w:val", style.Color)
		}
		if style.Size > 0 {
			// w:sz is in half-points.
			half := strconv.Itoa(style.Size * 2)
			sz := rPr.CreateElement("w:sz")
			sz.CreateAttr("w:val", half)
			szCs := rPr.CreateElement("w:szCs")
			szCs.CreateAttr("w:val", half)
		}
	}

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			r.CreateElement("w:br")
		}
		t := r.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(line)
	}
}
