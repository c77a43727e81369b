package response

import (
	"time"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
)

type EquipmentResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	IllustrationPath string    `json:"illustration_path"`
	UnitPrice        float64   `json:"unit_price"`
	Quantity         int       `json:"quantity"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromEquipment(e entities.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:               e.ID,
		Name:             e.Name,
		Description:      e.Description,
		IllustrationPath: e.IllustrationPath,
		UnitPrice:        e.UnitPrice,
		Quantity:         e.Quantity,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func FromEquipments(items []entities.Equipment) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEquipment(e))
	}
	return out
}
