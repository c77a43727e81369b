// Package docx is a minimal WordprocessingML layer: it opens a .docx package
// (a ZIP archive whose main part is word/document.xml), exposes the handful
// of operations proposal rendering needs (paragraph text rewriting, table
// construction, inline images, external hyperlinks) and writes the package
// back out with every untouched part preserved byte-for-byte.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
)

const (
	documentPart     = "word/document.xml"
	documentRelsPart = "word/_rels/document.xml.rels"
	contentTypesPart = "[Content_Types].xml"

	relTypeHyperlink = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	relTypeImage     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)

// Document is an open .docx package. The three parts the writer mutates
// (document, its relationships, the content types) are kept parsed; every
// other part stays as raw bytes.
type Document struct {
	partNames []string
	parts     map[string][]byte

	root  *node // w:document
	body  *node // w:body
	rels  *node // Relationships
	types *node // Types

	docPrID int
}

// Open reads a .docx file from disk.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	return OpenBytes(data)
}

// OpenBytes reads a .docx package from memory.
func OpenBytes(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}

	d := &Document{parts: make(map[string][]byte, len(zr.File))}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open part %s: %w", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read part %s: %w", f.Name, err)
		}
		d.partNames = append(d.partNames, f.Name)
		d.parts[f.Name] = b
	}

	if _, ok := d.parts[documentPart]; !ok {
		return nil, fmt.Errorf("%s not found in archive", documentPart)
	}
	if d.root, err = parsePart(d.parts[documentPart]); err != nil {
		return nil, fmt.Errorf("parse %s: %w", documentPart, err)
	}
	if d.body = d.root.child("w:body"); d.body == nil {
		return nil, fmt.Errorf("%s has no w:body", documentPart)
	}

	if raw, ok := d.parts[documentRelsPart]; ok {
		if d.rels, err = parsePart(raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", documentRelsPart, err)
		}
	} else {
		d.rels = emptyRelationships()
		d.partNames = append(d.partNames, documentRelsPart)
		d.parts[documentRelsPart] = nil
	}

	if raw, ok := d.parts[contentTypesPart]; ok {
		if d.types, err = parsePart(raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", contentTypesPart, err)
		}
	} else {
		return nil, fmt.Errorf("%s not found in archive", contentTypesPart)
	}

	return d, nil
}

// New builds an empty single-section document. Rendering always starts from
// the fixed template, but synthetic documents are what the tests run the
// pipeline against.
func New() *Document {
	d := &Document{parts: make(map[string][]byte)}

	d.types = el("Types",
		attr{"xmlns", "http://schemas.openxmlformats.org/package/2006/content-types"}).
		add(
			el("Default", attr{"Extension", "rels"},
				attr{"ContentType", "application/vnd.openxmlformats-package.relationships+xml"}),
			el("Default", attr{"Extension", "xml"},
				attr{"ContentType", "application/xml"}),
			el("Override", attr{"PartName", "/word/document.xml"},
				attr{"ContentType", "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"}),
		)

	rootRels := emptyRelationships()
	rootRels.add(el("Relationship",
		attr{"Id", "rId1"},
		attr{"Type", "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"},
		attr{"Target", "word/document.xml"}))

	d.rels = emptyRelationships()

	d.body = el("w:body").add(el("w:sectPr"))
	d.root = el("w:document",
		attr{"xmlns:w", "http://schemas.openxmlformats.org/wordprocessingml/2006/main"},
		attr{"xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships"}).
		add(d.body)

	d.partNames = []string{contentTypesPart, "_rels/.rels", documentPart, documentRelsPart}
	d.parts[contentTypesPart] = nil
	d.parts["_rels/.rels"] = serializePart(rootRels)
	d.parts[documentPart] = nil
	d.parts[documentRelsPart] = nil
	return d
}

func emptyRelationships() *node {
	return el("Relationships",
		attr{"xmlns", "http://schemas.openxmlformats.org/package/2006/relationships"})
}

// Bytes serializes the package.
func (d *Document) Bytes() ([]byte, error) {
	d.parts[documentPart] = serializePart(d.root)
	d.parts[documentRelsPart] = serializePart(d.rels)
	d.parts[contentTypesPart] = serializePart(d.types)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range d.partNames {
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", name, err)
		}
		if _, err := w.Write(d.parts[name]); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the package to disk.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DocumentXML returns the serialized main document part, for inspection.
func (d *Document) DocumentXML() []byte {
	return serializePart(d.root)
}

func (d *Document) addPart(name string, data []byte) {
	if _, exists := d.parts[name]; !exists {
		d.partNames = append(d.partNames, name)
	}
	d.parts[name] = data
}

// ---------------------------------------------------------------------------
// Relationships and content types
// ---------------------------------------------------------------------------

var relIDRe = regexp.MustCompile(`^rId(\d+)$`)

// addRelationship registers a relationship on the document part and returns
// its id.
func (d *Document) addRelationship(relType, target string, external bool) string {
	max := 0
	for _, c := range d.rels.children {
		if m := relIDRe.FindStringSubmatch(c.attrValue("Id")); m != nil {
			if n, _ := strconv.Atoi(m[1]); n > max {
				max = n
			}
		}
	}
	id := "rId" + strconv.Itoa(max+1)

	rel := el("Relationship",
		attr{"Id", id},
		attr{"Type", relType},
		attr{"Target", target})
	if external {
		rel.setAttr("TargetMode", "External")
	}
	d.rels.add(rel)
	return id
}

// ensureDefaultContentType registers a Default mapping for a file extension
// unless one is already present.
func (d *Document) ensureDefaultContentType(extension, contentType string) {
	for _, c := range d.types.children {
		if c.name == "Default" && c.attrValue("Extension") == extension {
			return
		}
	}
	d.types.add(el("Default",
		attr{"Extension", extension},
		attr{"ContentType", contentType}))
}

// ---------------------------------------------------------------------------
// Content access
// ---------------------------------------------------------------------------

// Paragraphs returns the top-level paragraphs of the body, in order. Does not
// descend into tables.
func (d *Document) Paragraphs() []Paragraph {
	var out []Paragraph
	for _, c := range d.body.children {
		if c.name == "w:p" {
			out = append(out, Paragraph{d: d, el: c})
		}
	}
	return out
}

// AllParagraphs returns every paragraph in the body, including paragraphs
// nested in table cells.
func (d *Document) AllParagraphs() []Paragraph {
	var out []Paragraph
	for _, n := range d.body.descendants("w:p", nil) {
		out = append(out, Paragraph{d: d, el: n})
	}
	return out
}

// AddParagraph appends an empty paragraph before the section properties.
func (d *Document) AddParagraph(text string) Paragraph {
	p := el("w:p")
	d.insertBlock(p)
	para := Paragraph{d: d, el: p}
	if text != "" {
		para.AddRun(text)
	}
	return para
}

// insertBlock appends a block-level element at the document end, keeping the
// trailing w:sectPr last as OOXML requires.
func (d *Document) insertBlock(n *node) {
	if sect := d.body.child("w:sectPr"); sect != nil {
		d.body.insertAt(d.body.indexOf(sect), n)
		return
	}
	d.body.add(n)
}

// MoveTableAfter relocates a top-level table to immediately follow the given
// paragraph. No-op when either element is not a direct child of the body.
func (d *Document) MoveTableAfter(t Table, p Paragraph) {
	if d.body.indexOf(p.el) < 0 || d.body.indexOf(t.el) < 0 {
		return
	}
	d.body.removeChild(t.el)
	d.body.insertAt(d.body.indexOf(p.el)+1, t.el)
}
