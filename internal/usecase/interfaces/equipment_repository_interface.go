package interfaces

import (
	"context"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
)

// IEquipmentRepository abstracts DynamoDB persistence for Equipment.

type IEquipmentRepository interface {
	Create(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	GetByID(ctx context.Context, id string) (entities.Equipment, error)
	List(ctx context.Context) ([]entities.Equipment, error)
	Update(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	Delete(ctx context.Context, id string) error
}
