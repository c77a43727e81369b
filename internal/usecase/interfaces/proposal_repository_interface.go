package interfaces

import (
	"context"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
)

// ProposalFilter narrows proposal history queries. Zero values match
// everything; Date compares against the creation day (YYYY-MM-DD).
type ProposalFilter struct {
	UserID         string
	Date           string
	ServicoType    entities.ServicoType
	ModalidadeType entities.ModalidadeType
}

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// List returns proposals newest first; pagination happens in the use case.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context, filter ProposalFilter) ([]entities.Proposal, error)
	Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	Delete(ctx context.Context, id string) error
}
