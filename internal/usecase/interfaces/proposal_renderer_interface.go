package interfaces

import (
	"context"

	"github.com/vktkrum1/sistema-de-propostas/internal/docgen"
)

// IProposalRenderer abstracts the document pipeline so use cases can be
// tested without a template file or LibreOffice.

type IProposalRenderer interface {
	Render(ctx context.Context, req docgen.RenderRequest) ([]byte, error)
}
