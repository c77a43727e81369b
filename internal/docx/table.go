package docx

// Table wraps one w:tbl element.
type Table struct {
	d    *Document
	el   *node
	cols int
}

// AddTable appends a bordered table ("Table Grid" look) with the given number
// of columns at the document end.
func (d *Document) AddTable(cols int) Table {
	borders := el("w:tblBorders")
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		borders.add(el("w:"+side,
			attr{"w:val", "single"},
			attr{"w:sz", "4"},
			attr{"w:space", "0"},
			attr{"w:color", "auto"}))
	}

	tblPr := el("w:tblPr").add(
		el("w:tblStyle", attr{"w:val", "TableGrid"}),
		el("w:tblW", attr{"w:w", "0"}, attr{"w:type", "auto"}),
		borders,
	)

	grid := el("w:tblGrid")
	for i := 0; i < cols; i++ {
		grid.add(el("w:gridCol"))
	}

	tbl := el("w:tbl").add(tblPr, grid)
	d.insertBlock(tbl)
	return Table{d: d, el: tbl, cols: cols}
}

// Tables returns the top-level tables of the body, in order.
func (d *Document) Tables() []Table {
	var out []Table
	for _, c := range d.body.children {
		if c.name == "w:tbl" {
			t := Table{d: d, el: c}
			if grid := c.child("w:tblGrid"); grid != nil {
				for _, g := range grid.children {
					if g.name == "w:gridCol" {
						t.cols++
					}
				}
			}
			out = append(out, t)
		}
	}
	return out
}

// Columns reports the column count from the table grid.
func (t Table) Columns() int { return t.cols }

// AddRow appends a row with one empty-paragraph cell per column.
func (t Table) AddRow() Row {
	tr := el("w:tr")
	for i := 0; i < t.cols; i++ {
		tr.add(el("w:tc").add(el("w:tcPr"), el("w:p")))
	}
	t.el.add(tr)
	return Row{d: t.d, el: tr}
}

// Rows returns the rows of the table, in order.
func (t Table) Rows() []Row {
	var out []Row
	for _, c := range t.el.children {
		if c.name == "w:tr" {
			out = append(out, Row{d: t.d, el: c})
		}
	}
	return out
}

// Row wraps one w:tr element.
type Row struct {
	d  *Document
	el *node
}

// Cells returns the cells of the row, in order.
func (r Row) Cells() []Cell {
	var out []Cell
	for _, c := range r.el.children {
		if c.name == "w:tc" {
			out = append(out, Cell{d: r.d, el: c})
		}
	}
	return out
}

// Cell wraps one w:tc element.
type Cell struct {
	d  *Document
	el *node
}

// Paragraph returns the first paragraph of the cell, creating one if needed.
func (c Cell) Paragraph() Paragraph {
	if p := c.el.child("w:p"); p != nil {
		return Paragraph{d: c.d, el: p}
	}
	p := el("w:p")
	c.el.add(p)
	return Paragraph{d: c.d, el: p}
}

// SetText replaces the cell content with a single run.
func (c Cell) SetText(text string) {
	c.Paragraph().SetText(text)
}

// Text returns the concatenated text of the cell.
func (c Cell) Text() string {
	return c.el.gatherText("w:t")
}

// AlignCenterVertically centers the cell content vertically.
func (c Cell) AlignCenterVertically() {
	tcPr := c.el.child("w:tcPr")
	if tcPr == nil {
		tcPr = el("w:tcPr")
		c.el.insertAt(0, tcPr)
	}
	if v := tcPr.child("w:vAlign"); v != nil {
		v.setAttr("w:val", "center")
		return
	}
	tcPr.add(el("w:vAlign", attr{"w:val", "center"}))
}
