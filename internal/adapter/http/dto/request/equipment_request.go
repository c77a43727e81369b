package request

import "github.com/vktkrum1/sistema-de-propostas/internal/usecase"

type CreateEquipmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
	Quantity    int     `json:"quantity"`
}

func (r CreateEquipmentRequest) ToInput() usecase.CreateEquipmentInput {
	return usecase.CreateEquipmentInput{
		Name:        r.Name,
		Description: r.Description,
		UnitPrice:   r.UnitPrice,
		Quantity:    r.Quantity,
	}
}

type UpdateEquipmentRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

func (r UpdateEquipmentRequest) ToInput() usecase.UpdateEquipmentInput {
	return usecase.UpdateEquipmentInput{
		Name:        r.Name,
		Description: r.Description,
		UnitPrice:   r.UnitPrice,
		Quantity:    r.Quantity,
	}
}
