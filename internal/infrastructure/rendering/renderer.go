package rendering

import (
	"context"
	"os"

	"github.com/vktkrum1/sistema-de-propostas/internal/docgen"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"
)

// ProposalRenderer plugs the document pipeline into the use case layer.
type ProposalRenderer struct {
	gen *docgen.Generator
}

var _ interfaces.IProposalRenderer = (*ProposalRenderer)(nil)

// NewProposalRendererFromEnv builds the pipeline from environment variables:
//
//   - PROPOSAL_TEMPLATE_PATH (default docs_templates/proposta.docx)
//   - APP_BASE_DIR (default current directory; root of static/images)
func NewProposalRendererFromEnv() *ProposalRenderer {
	template := getenvDefault("PROPOSAL_TEMPLATE_PATH", "docs_templates/proposta.docx")
	baseDir := getenvDefault("APP_BASE_DIR", ".")
	return &ProposalRenderer{gen: docgen.NewGenerator(template, baseDir, docgen.NewConverter())}
}

func NewProposalRenderer(gen *docgen.Generator) *ProposalRenderer {
	return &ProposalRenderer{gen: gen}
}

func (r *ProposalRenderer) Render(ctx context.Context, req docgen.RenderRequest) ([]byte, error) {
	return r.gen.Generate(ctx, req)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
