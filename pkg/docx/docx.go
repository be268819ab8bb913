// Package docx builds WordprocessingML report documents.
//
// It implements the small document capability the report writers
// need: open a template package, append headings, styled paragraphs,
// borderless shaded tables, page breaks, and inline PNG images after
// the template's existing content, then save the package. It is not a
// general DOCX editor; parts other than the main document, its
// relationships, and the package content types pass through verbatim,
// which is what keeps template styling, headers, and footers intact.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/nessdoc/nessdoc/pkg/iohelper"
)

// Sentinel errors for document failure modes.
// Callers should use errors.Is() to check for these.
var (
	// ErrNotDocx indicates the file is not a DOCX package (not a
	// zip, or no word/document.xml part).
	ErrNotDocx = errors.New("docx: not a docx package")

	// ErrNoBody indicates the main document part has no w:body.
	ErrNoBody = errors.New("docx: document has no body")
)

// Part names the package reparses; everything else is kept verbatim.
const (
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partContentTypes = "[Content_Types].xml"
)

// Document is an open DOCX package positioned for appending content
// at the end of the body. Not safe for concurrent use.
type Document struct {
	parts  map[string][]byte // verbatim parts, by zip name
	order  []string          // zip entry order, including reparsed parts
	xml    *etree.Document   // word/document.xml
	body   *etree.Element
	sectPr *etree.Element // trailing section properties, reattached on save
	rels   *etree.Document
	types  *etree.Document
	images int
}

// Open loads the DOCX package at path as a template. The existing
// body content is preserved; appended content lands before the
// trailing section properties so page geometry survives.
func Open(path string) (*Document, error) {
	data, err := iohelper.ReadFileLimited(path, iohelper.MaxTemplateSize)
	if err != nil {
		return nil, fmt.Errorf("docx: open %s: %w", path, err)
	}
	d, err := load(data)
	if err != nil {
		return nil, fmt.Errorf("docx: open %s: %w", path, err)
	}
	return d, nil
}

func load(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	d := &Document{parts: make(map[string][]byte)}
	var docXML, relsXML, typesXML []byte
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
		}
		d.order = append(d.order, f.Name)
		switch f.Name {
		case partDocument:
			docXML = content
		case partDocumentRels:
			relsXML = content
		case partContentTypes:
			typesXML = content
		default:
			d.parts[f.Name] = content
		}
	}
	if docXML == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrNotDocx, partDocument)
	}

	d.xml = etree.NewDocument()
	if err := d.xml.ReadFromBytes(docXML); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotDocx, partDocument, err)
	}
	root := d.xml.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: empty %s", ErrNotDocx, partDocument)
	}
	d.body = root.SelectElement("w:body")
	if d.body == nil {
		return nil, ErrNoBody
	}

	// Detach the trailing sectPr; content appends go before it and
	// SaveTo puts it back.
	if sect := d.body.SelectElement("w:sectPr"); sect != nil {
		d.body.RemoveChild(sect)
		d.sectPr = sect
	}

	d.rels = etree.NewDocument()
	if relsXML != nil {
		if err := d.rels.ReadFromBytes(relsXML); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrNotDocx, partDocumentRels, err)
		}
	} else {
		d.rels.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
		rel := d.rels.CreateElement("Relationships")
		rel.CreateAttr("xmlns", nsPackageRels)
		d.order = append(d.order, partDocumentRels)
	}

	d.types = etree.NewDocument()
	if typesXML == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrNotDocx, partContentTypes)
	}
	if err := d.types.ReadFromBytes(typesXML); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotDocx, partContentTypes, err)
	}

	return d, nil
}

// New returns a minimal valid document with Normal and Heading1-4
// styles. It backs the starter-template subcommand and the package
// tests; report generation itself always starts from Open.
func New() (*Document, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range minimalParts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("docx: build minimal package: %w", err)
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			return nil, fmt.Errorf("docx: build minimal package: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx: build minimal package: %w", err)
	}
	return load(buf.Bytes())
}

// SaveTo writes the package to path, overwriting any existing file.
// The write is atomic: a partial failure leaves no output file.
func (d *Document) SaveTo(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := iohelper.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("docx: save %s: %w", path, err)
	}
	return nil
}

// Bytes serializes the package. The document stays usable afterwards.
func (d *Document) Bytes() ([]byte, error) {
	if d.sectPr != nil {
		d.body.AddChild(d.sectPr)
		defer d.body.RemoveChild(d.sectPr)
	}

	docXML, err := d.xml.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("docx: serialize %s: %w", partDocument, err)
	}
	relsXML, err := d.rels.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("docx: serialize %s: %w", partDocumentRels, err)
	}
	typesXML, err := d.types.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("docx: serialize %s: %w", partContentTypes, err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range d.order {
		var content []byte
		switch name {
		case partDocument:
			content = docXML
		case partDocumentRels:
			content = relsXML
		case partContentTypes:
			content = typesXML
		default:
			content = d.parts[name]
		}
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("docx: write part %s: %w", name, err)
		}
		if _, err := w.Write(content); err != nil {
			return nil, fmt.Errorf("docx: write part %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx: finalize package: %w", err)
	}
	return buf.Bytes(), nil
}

// PlainText extracts the body text, one line per paragraph, in
// document order. Table cell paragraphs are included. Used by tests
// and the idempotence checks; not a faithful layout rendering.
func (d *Document) PlainText() string {
	var buf bytes.Buffer
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.Space == "w" && el.Tag == "p" {
			for _, t := range collectText(el) {
				buf.WriteString(t)
			}
			buf.WriteByte('\n')
			return
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(d.body)
	return buf.String()
}

func collectText(el *etree.Element) []string {
	var out []string
	for _, child := range el.ChildElements() {
		if child.Space == "w" && child.Tag == "t" {
			out = append(out, child.Text())
			continue
		}
		out = append(out, collectText(child)...)
	}
	return out
}
