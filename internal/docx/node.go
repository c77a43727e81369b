package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// The document.xml of a .docx is namespace-heavy XML whose prefixes must
// survive a read/modify/write round trip byte-for-byte in spirit (Word and
// LibreOffice both resolve content through the declared prefixes). Go's
// encoding/xml resolves prefixes to namespace URLs while decoding, so parsing
// keeps a scope stack of xmlns declarations and maps every name back to its
// original prefixed form. Elements we build ourselves carry literal prefixed
// names from the start.

type attr struct {
	name  string
	value string
}

// node is one element (or, when name is empty, one character-data chunk) of a
// parsed XML part.
type node struct {
	name     string
	attrs    []attr
	children []*node
	text     string
}

func el(name string, attrs ...attr) *node {
	return &node{name: name, attrs: attrs}
}

func textNode(s string) *node {
	return &node{text: s}
}

func (n *node) add(children ...*node) *node {
	n.children = append(n.children, children...)
	return n
}

// child returns the first direct child with the given prefixed name.
func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// descendants appends to out every node in the subtree (excluding n itself)
// whose name matches.
func (n *node) descendants(name string, out []*node) []*node {
	for _, c := range n.children {
		if c.name == name {
			out = append(out, c)
		}
		out = c.descendants(name, out)
	}
	return out
}

func (n *node) attrValue(name string) string {
	for _, a := range n.attrs {
		if a.name == name {
			return a.value
		}
	}
	return ""
}

func (n *node) setAttr(name, value string) {
	for i := range n.attrs {
		if n.attrs[i].name == name {
			n.attrs[i].value = value
			return
		}
	}
	n.attrs = append(n.attrs, attr{name, value})
}

func (n *node) removeChild(c *node) bool {
	for i, cur := range n.children {
		if cur == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
	}
	return false
}

func (n *node) indexOf(c *node) int {
	for i, cur := range n.children {
		if cur == c {
			return i
		}
	}
	return -1
}

func (n *node) insertAt(i int, c *node) {
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
}

// removeChildrenNamed drops every direct child whose name is in names.
func (n *node) removeChildrenNamed(names ...string) {
	kept := n.children[:0]
	for _, c := range n.children {
		drop := false
		for _, name := range names {
			if c.name == name {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, c)
		}
	}
	n.children = kept
}

// text concatenates the character data of every descendant with the given
// element name, in document order.
func (n *node) gatherText(name string) string {
	var b strings.Builder
	for _, t := range n.descendants(name, nil) {
		for _, c := range t.children {
			if c.name == "" {
				b.WriteString(c.text)
			}
		}
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Parsing
// ---------------------------------------------------------------------------

const xmlNamespaceURL = "http://www.w3.org/XML/1998/namespace"

type nsBinding struct {
	url    string
	prefix string
}

type xmlParser struct {
	bindings []nsBinding
	marks    []int
}

func (p *xmlParser) push() { p.marks = append(p.marks, len(p.bindings)) }

func (p *xmlParser) pop() {
	last := len(p.marks) - 1
	p.bindings = p.bindings[:p.marks[last]]
	p.marks = p.marks[:last]
}

func (p *xmlParser) bind(url, prefix string) {
	p.bindings = append(p.bindings, nsBinding{url: url, prefix: prefix})
}

func (p *xmlParser) prefixFor(url string) (string, bool) {
	for i := len(p.bindings) - 1; i >= 0; i-- {
		if p.bindings[i].url == url {
			return p.bindings[i].prefix, true
		}
	}
	return "", false
}

func (p *xmlParser) prefixedName(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case "xml", xmlNamespaceURL:
		return "xml:" + n.Local
	}
	if prefix, ok := p.prefixFor(n.Space); ok {
		if prefix == "" {
			return n.Local
		}
		return prefix + ":" + n.Local
	}
	// The decoder leaves undeclared prefixes verbatim in Space.
	return n.Space + ":" + n.Local
}

// parsePart decodes one XML part into a node tree.
func parsePart(data []byte) (*node, error) {
	p := &xmlParser{}
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *node
	var stack []*node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml part: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			p.push()
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" {
					p.bind(a.Value, a.Name.Local)
				} else if a.Name.Space == "" && a.Name.Local == "xmlns" {
					p.bind(a.Value, "")
				}
			}

			n := &node{name: p.prefixedName(t.Name)}
			for _, a := range t.Attr {
				var name string
				switch {
				case a.Name.Space == "xmlns":
					name = "xmlns:" + a.Name.Local
				case a.Name.Space == "" && a.Name.Local == "xmlns":
					name = "xmlns"
				default:
					name = p.prefixedName(a.Name)
				}
				n.attrs = append(n.attrs, attr{name: name, value: a.Value})
			}

			if len(stack) == 0 {
				root = n
			} else {
				top := stack[len(stack)-1]
				top.children = append(top.children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
			p.pop()

		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.children = append(top.children, textNode(string(t)))
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parse xml part: no root element")
	}
	return root, nil
}

// ---------------------------------------------------------------------------
// Serialization
// ---------------------------------------------------------------------------

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func (n *node) writeTo(b *bytes.Buffer) {
	if n.name == "" {
		b.WriteString(textEscaper.Replace(n.text))
		return
	}
	b.WriteByte('<')
	b.WriteString(n.name)
	for _, a := range n.attrs {
		b.WriteByte(' ')
		b.WriteString(a.name)
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(a.value))
		b.WriteByte('"')
	}
	if len(n.children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	for _, c := range n.children {
		c.writeTo(b)
	}
	b.WriteString("</")
	b.WriteString(n.name)
	b.WriteByte('>')
}

func serializePart(root *node) []byte {
	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\r\n")
	root.writeTo(&b)
	return b.Bytes()
}
