// Package docgen renders commercial proposal documents: it merges a proposal
// record and its priced line items into the fixed DOCX template and
// optionally converts the result to PDF through an injected converter
// backend.
package docgen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vktkrum1/sistema-de-propostas/internal/docx"
)

var (
	// ErrTemplateMissing signals deployment misconfiguration: the fixed
	// proposal template is not where the service expects it.
	ErrTemplateMissing = errors.New("template DOCX da proposta não encontrado")

	// ErrInvalidPhone rejects a supplied phone that cannot be a full
	// international mobile number. Raised before any document I/O.
	ErrInvalidPhone = errors.New(
		"telefone inválido: informe DDI+DDD+número, por exemplo +55 11 912345678")
)

// ProposalData is the read-only proposal record consumed by a render.
type ProposalData struct {
	Company         string
	CNPJ            string
	ClientName      string
	Email           string
	Telefone        string
	Pagamento       string
	PrazoEntrega    string
	Frete           string
	Validade        string
	Garantia        string
	GarantiaSistema string
	CreatedAt       time.Time
}

// LineItem is one equipment line as rendered on one proposal. The numeric
// fields are render-time values fixed by the caller; the catalog entity is
// never consulted or mutated here.
type LineItem struct {
	Description      string
	Name             string
	UnitPrice        float64
	Quantity         int
	DiscountPercent  float64
	IllustrationPath string
}

// RenderRequest is the sole input contract of the pipeline.
type RenderRequest struct {
	Proposal          ProposalData
	Items             []LineItem
	Format            string // "docx" or "pdf"
	ProposalCode      string
	CollaboratorName  string
	CollaboratorEmail string
}

// Generator drives the rendering pipeline. It is stateless across calls:
// every generation works in a private scratch directory on a private copy of
// the template, so concurrent renders never collide.
type Generator struct {
	TemplatePath string
	BaseDir      string
	Converter    DocumentConverter
}

func NewGenerator(templatePath, baseDir string, converter DocumentConverter) *Generator {
	return &Generator{TemplatePath: templatePath, BaseDir: baseDir, Converter: converter}
}

// Generate validates the request, populates a copy of the template and
// returns the document bytes in the requested format. Either a complete
// document comes back or an error does; no partial output, no scratch files
// left behind.
func (g *Generator) Generate(ctx context.Context, req RenderRequest) ([]byte, error) {
	if _, err := os.Stat(g.TemplatePath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, g.TemplatePath)
	}

	rawPhone := req.Proposal.Telefone
	digits := DigitsOnly(rawPhone)
	if rawPhone != "" && !ValidPhone(digits) {
		return nil, ErrInvalidPhone
	}

	tmp, err := os.MkdirTemp("", "proposta-*")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	workFile := filepath.Join(tmp, uuid.NewString()+".docx")
	template, err := os.ReadFile(g.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	if err := os.WriteFile(workFile, template, 0o600); err != nil {
		return nil, fmt.Errorf("copy template: %w", err)
	}

	doc, err := docx.Open(workFile)
	if err != nil {
		return nil, fmt.Errorf("open template copy: %w", err)
	}

	substituteFields(doc, buildFieldMap(req, rawPhone))
	insertEquipmentTable(doc, req.Items, g.BaseDir)
	if ValidPhone(digits) {
		linkifyPhone(doc, rawPhone, digits)
	}

	if err := doc.Save(workFile); err != nil {
		return nil, fmt.Errorf("save populated document: %w", err)
	}

	if strings.EqualFold(req.Format, "pdf") {
		converter := g.Converter
		if converter == nil {
			converter = UnavailableConverter{}
		}
		pdf, err := converter.ConvertToPDF(ctx, workFile, tmp)
		if err != nil {
			return nil, err
		}
		log.Printf("[docgen] rendered pdf code=%s bytes=%d", req.ProposalCode, len(pdf))
		return pdf, nil
	}

	data, err := os.ReadFile(workFile)
	if err != nil {
		return nil, fmt.Errorf("read populated document: %w", err)
	}
	log.Printf("[docgen] rendered docx code=%s bytes=%d", req.ProposalCode, len(data))
	return data, nil
}
