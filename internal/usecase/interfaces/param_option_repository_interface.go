package interfaces

import (
	"context"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
)

// IParamOptionRepository abstracts DynamoDB persistence for ParamOption.

type IParamOptionRepository interface {
	Create(ctx context.Context, o entities.ParamOption) (entities.ParamOption, error)
	GetByID(ctx context.Context, id string) (entities.ParamOption, error)
	ListByCategory(ctx context.Context, category entities.ParamCategory) ([]entities.ParamOption, error)
	Delete(ctx context.Context, id string) error
}
