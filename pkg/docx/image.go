package docx

import (
	"bytes"
	"fmt"
	"image/png"
	"strconv"
	"strings"

	"github.com/nessdoc/nessdoc/pkg/iohelper"
)

// One pixel at 96 DPI in English Metric Units.
const emuPerPixel = 9525

// AddImageFile embeds the PNG at path as an inline image in a new
// paragraph. The file is read immediately; the caller may remove it
// as soon as this returns.
func (d *Document) AddImageFile(path string) error {
	data, err := iohelper.ReadFileLimited(path, iohelper.MaxImageSize)
	if err != nil {
		return fmt.Errorf("docx: read image %s: %w", path, err)
	}
	return d.AddImage(data)
}

// AddImage embeds PNG data as an inline image in a new paragraph,
// sized at the image's native pixel dimensions (96 DPI).
func (d *Document) AddImage(data []byte) error {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("docx: decode image: %w", err)
	}
	cx := int64(cfg.Width) * emuPerPixel
	cy := int64(cfg.Height) * emuPerPixel

	d.images++
	name := fmt.Sprintf("word/media/image%d.png", d.images)
	d.parts[name] = data
	d.order = append(d.order, name)
	d.ensurePNGContentType()

	rid := d.addImageRel(strings.TrimPrefix(name, "word/"))

	// The drawing markup declares its own wp/a/pic/r namespaces so it
	// works inside any template, whatever the root declares.
	p := d.body.CreateElement("w:p")
	r := p.CreateElement("w:r")
	drawing := r.CreateElement("w:drawing")

	inline := drawing.CreateElement("wp:inline")
	inline.CreateAttr("xmlns:wp", nsDrawingWP)
	for _, dist := range []string{"distT", "distB", "distL", "distR"} {
		inline.CreateAttr(dist, "0")
	}
	extent := inline.CreateElement("wp:extent")
	extent.CreateAttr("cx", strconv.FormatInt(cx, 10))
	extent.CreateAttr("cy", strconv.FormatInt(cy, 10))
	docPr := inline.CreateElement("wp:docPr")
	docPr.CreateAttr("id", strconv.Itoa(d.images))
	docPr.CreateAttr("name", fmt.Sprintf("Chart %d", d.images))

	graphic := inline.CreateElement("a:graphic")
	graphic.CreateAttr("xmlns:a", nsDrawingMain)
	graphicData := graphic.CreateElement("a:graphicData")
	graphicData.CreateAttr("uri", nsDrawingPic)

	pic := graphicData.CreateElement("pic:pic")
	pic.CreateAttr("xmlns:pic", nsDrawingPic)
	nvPicPr := pic.CreateElement("pic:nvPicPr")
	cNvPr := nvPicPr.CreateElement("pic:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(d.images))
	cNvPr.CreateAttr("name", fmt.Sprintf("image%d.png", d.images))
	nvPicPr.CreateElement("pic:cNvPicPr")

	blipFill := pic.CreateElement("pic:blipFill")
	blip := blipFill.CreateElement("a:blip")
	blip.CreateAttr("xmlns:r", nsOfficeRels)
	blip.CreateAttr("r:embed", rid)
	blipFill.CreateElement("a:stretch").CreateElement("a:fillRect")

	spPr := pic.CreateElement("pic:spPr")
	xfrm := spPr.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", "0")
	off.CreateAttr("y", "0")
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", strconv.FormatInt(cx, 10))
	ext.CreateAttr("cy", strconv.FormatInt(cy, 10))
	prstGeom := spPr.CreateElement("a:prstGeom")
	prstGeom.CreateAttr("prst", "rect")
	prstGeom.CreateElement("a:avLst")

	return nil
}

// addImageRel registers an image relationship for target (relative to
// word/) and returns its id.
func (d *Document) addImageRel(target string) string {
	root := d.rels.Root()

	maxID := 0
	for _, rel := range root.ChildElements() {
		id := rel.SelectAttrValue("Id", "")
		if n, err := strconv.Atoi(strings.TrimPrefix(id, "rId")); err == nil && n > maxID {
			maxID = n
		}
	}
	rid := fmt.Sprintf("rId%d", maxID+1)

	rel := root.CreateElement("Relationship")
	rel.CreateAttr("Id", rid)
	rel.CreateAttr("Type", relTypeImage)
	rel.CreateAttr("Target", target)
	return rid
}

// ensurePNGContentType adds the png Default to [Content_Types].xml
// once, before the first image part is written.
func (d *Document) ensurePNGContentType() {
	root := d.types.Root()
	for _, def := range root.SelectElements("Default") {
		if strings.EqualFold(def.SelectAttrValue("Extension", ""), "png") {
			return
		}
	}
	def := root.CreateElement("Default")
	def.CreateAttr("Extension", "png")
	def.CreateAttr("ContentType", "image/png")
}
