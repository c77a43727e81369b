package docx

import (
	"fmt"
	"strconv"
)

// Paragraph wraps one w:p element.
type Paragraph struct {
	d  *Document
	el *node
}

// Text returns the concatenated character data of every text run in the
// paragraph, hyperlink runs included.
func (p Paragraph) Text() string {
	return p.el.gatherText("w:t")
}

// ClearRuns removes every run and hyperlink, keeping paragraph properties.
func (p Paragraph) ClearRuns() {
	p.el.removeChildrenNamed("w:r", "w:hyperlink")
}

// SetText replaces the paragraph content with a single unformatted run.
// Formatting carried by the previous runs is lost; the paragraph-level
// properties survive.
func (p Paragraph) SetText(text string) {
	p.ClearRuns()
	p.AddRun(text)
}

// AddRun appends a plain text run.
func (p Paragraph) AddRun(text string) {
	p.el.add(runNode(text))
}

func runNode(text string) *node {
	t := el("w:t", attr{"xml:space", "preserve"}).add(textNode(text))
	return el("w:r").add(t)
}

// AddHyperlink appends an external hyperlink run with the given visible text.
func (p Paragraph) AddHyperlink(url, text string) {
	relID := p.d.addRelationship(relTypeHyperlink, url, true)

	run := el("w:r").add(
		el("w:rPr").add(el("w:rStyle", attr{"w:val", "Hyperlink"})),
		el("w:t", attr{"xml:space", "preserve"}).add(textNode(text)),
	)
	p.el.add(el("w:hyperlink", attr{"r:id", relID}).add(run))
}

// AlignCenter sets the paragraph justification to centered.
func (p Paragraph) AlignCenter() {
	pPr := p.el.child("w:pPr")
	if pPr == nil {
		pPr = el("w:pPr")
		p.el.insertAt(0, pPr)
	}
	if jc := pPr.child("w:jc"); jc != nil {
		jc.setAttr("w:val", "center")
		return
	}
	pPr.add(el("w:jc", attr{"w:val", "center"}))
}

// AddInlinePicture embeds PNG data as an inline drawing run sized in EMU.
// The image bytes become a new media part with their own relationship.
func (p Paragraph) AddInlinePicture(png []byte, widthEMU, heightEMU int64) error {
	if len(png) == 0 {
		return fmt.Errorf("add picture: empty image data")
	}

	d := p.d
	d.docPrID++
	id := d.docPrID
	partName := fmt.Sprintf("word/media/image%d.png", id)
	for _, exists := d.parts[partName]; exists; _, exists = d.parts[partName] {
		id++
		partName = fmt.Sprintf("word/media/image%d.png", id)
	}
	d.docPrID = id

	d.addPart(partName, png)
	d.ensureDefaultContentType("png", "image/png")
	relID := d.addRelationship(relTypeImage, fmt.Sprintf("media/image%d.png", id), false)

	p.el.add(el("w:r").add(drawingNode(relID, id, widthEMU, heightEMU)))
	return nil
}

// drawingNode builds the wp:inline drawing markup for one embedded picture.
// The drawingml namespaces are declared inline so the template's root element
// does not need to know about them.
func drawingNode(relID string, id int, cx, cy int64) *node {
	cxs := strconv.FormatInt(cx, 10)
	cys := strconv.FormatInt(cy, 10)
	name := fmt.Sprintf("image%d.png", id)

	pic := el("pic:pic",
		attr{"xmlns:pic", "http://schemas.openxmlformats.org/drawingml/2006/picture"}).add(
		el("pic:nvPicPr").add(
			el("pic:cNvPr", attr{"id", strconv.Itoa(id)}, attr{"name", name}),
			el("pic:cNvPicPr"),
		),
		el("pic:blipFill").add(
			el("a:blip", attr{"r:embed", relID}),
			el("a:stretch").add(el("a:fillRect")),
		),
		el("pic:spPr").add(
			el("a:xfrm").add(
				el("a:off", attr{"x", "0"}, attr{"y", "0"}),
				el("a:ext", attr{"cx", cxs}, attr{"cy", cys}),
			),
			el("a:prstGeom", attr{"prst", "rect"}).add(el("a:avLst")),
		),
	)

	inline := el("wp:inline",
		attr{"xmlns:wp", "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"},
		attr{"distT", "0"}, attr{"distB", "0"}, attr{"distL", "0"}, attr{"distR", "0"}).add(
		el("wp:extent", attr{"cx", cxs}, attr{"cy", cys}),
		el("wp:effectExtent", attr{"l", "0"}, attr{"t", "0"}, attr{"r", "0"}, attr{"b", "0"}),
		el("wp:docPr", attr{"id", strconv.Itoa(id)}, attr{"name", name}),
		el("wp:cNvGraphicFramePr").add(
			el("a:graphicFrameLocks",
				attr{"xmlns:a", "http://schemas.openxmlformats.org/drawingml/2006/main"},
				attr{"noChangeAspect", "1"}),
		),
		el("a:graphic",
			attr{"xmlns:a", "http://schemas.openxmlformats.org/drawingml/2006/main"}).add(
			el("a:graphicData",
				attr{"uri", "http://schemas.openxmlformats.org/drawingml/2006/picture"}).add(pic),
		),
	)

	return el("w:drawing").add(inline)
}
