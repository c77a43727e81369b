package interfaces

import (
	"context"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// NextProposalNumber must be atomic (ADD prox_num 1) so concurrent proposal
// creations never reuse a sequence number; it returns the number just
// consumed.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByUsuario(ctx context.Context, usuario string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	Delete(ctx context.Context, id string) error
	NextProposalNumber(ctx context.Context, id string) (int, error)
}
