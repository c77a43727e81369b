package docgen

import (
	"bytes"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vktkrum1/sistema-de-propostas/internal/docx"
)

const (
	emuPerInch = 914400

	// Display width of the illustration column. Upload normalizes every
	// illustration to a 160x180 thumbnail; 1.67in is 160px at 96dpi.
	imageWidthEMU = 1527048

	imagePlaceholder = "—"
)

// anchorPhrases mark the paragraph after which the pricing table must land.
// The template exists in two label variants.
var anchorPhrases = []string{"INVESTIMENTO:", "INVESTIMENTO (AQUISIÇÃO):"}

// insertEquipmentTable builds the pricing table for the proposal lines and
// places it after the anchor paragraph when one exists, otherwise at the
// document end.
//
// The column layout is decided once for the whole table: a discounted-price
// column appears only when at least one line carries a non-zero discount.
func insertEquipmentTable(doc *docx.Document, items []LineItem, baseDir string) {
	hasDiscount := false
	for _, it := range items {
		if it.DiscountPercent != 0 {
			hasDiscount = true
			break
		}
	}

	var anchor *docx.Paragraph
	for _, p := range doc.Paragraphs() {
		upper := strings.ToUpper(p.Text())
		for _, phrase := range anchorPhrases {
			if strings.Contains(upper, phrase) {
				a := p
				anchor = &a
				break
			}
		}
		if anchor != nil {
			break
		}
	}

	cols := 5
	headers := []string{"Descrição", "Imagem", "Quantidade", "Preço Unitário", "Total"}
	centered := []int{1, 2, 3, 4}
	if hasDiscount {
		cols = 6
		headers = []string{"Descrição", "Imagem", "Quantidade", "Preço Unitário", "Preço c/ desconto", "Total"}
		centered = []int{1, 2, 3, 4, 5}
	}

	table := doc.AddTable(cols)

	hdr := table.AddRow().Cells()
	for i, cell := range hdr {
		cell.SetText(headers[i])
		cell.AlignCenterVertically()
		cell.Paragraph().AlignCenter()
	}

	for _, it := range items {
		pct := decimal.NewFromFloat(it.DiscountPercent)
		unit := decimal.NewFromFloat(it.UnitPrice)
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		discounted := discountedPrice(unit, pct)
		total := discounted.Mul(decimal.NewFromInt(int64(qty)))

		cells := table.AddRow().Cells()

		description := it.Description
		if description == "" {
			description = it.Name
		}
		cells[0].SetText(description)

		fillImageCell(cells[1], it.IllustrationPath, baseDir)

		cells[2].SetText(strconv.Itoa(qty))
		cells[3].SetText(formatBRL(unit))

		if hasDiscount {
			if it.DiscountPercent != 0 {
				cells[4].SetText(formatBRL(discounted))
			}
			cells[5].SetText(formatBRL(total))
		} else {
			cells[4].SetText(formatBRL(total))
		}

		for _, i := range centered {
			cells[i].AlignCenterVertically()
			cells[i].Paragraph().AlignCenter()
		}
	}

	if anchor != nil {
		doc.MoveTableAfter(table, *anchor)
	}
}

// fillImageCell embeds the resolved illustration, or a placeholder glyph when
// the stored path resolves to nothing readable. A missing image is not an
// error: generation continues and the gap is visible in the document itself.
func fillImageCell(cell docx.Cell, storedPath, baseDir string) {
	path, ok := ResolveImagePath(storedPath, baseDir)
	if !ok {
		cell.SetText(imagePlaceholder)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[docgen] illustration unreadable path=%s err=%v", path, err)
		cell.SetText(imagePlaceholder)
		return
	}

	if err := cell.Paragraph().AddInlinePicture(data, imageWidthEMU, imageHeightEMU(data)); err != nil {
		log.Printf("[docgen] illustration embed failed path=%s err=%v", path, err)
		cell.SetText(imagePlaceholder)
	}
}

// imageHeightEMU scales the fixed display width by the image's own aspect
// ratio, falling back to the 160x180 upload thumbnail shape when the bytes
// are not decodable as PNG.
func imageHeightEMU(data []byte) int64 {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 {
		return imageWidthEMU * 180 / 160
	}
	return int64(float64(imageWidthEMU) * float64(cfg.Height) / float64(cfg.Width))
}
