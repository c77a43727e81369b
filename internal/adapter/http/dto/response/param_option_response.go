package response

import (
	"time"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
)

type ParamOptionResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Label       string    `json:"label"`
	CreatedByID string    `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromParamOption(p entities.ParamOption) ParamOptionResponse {
	return ParamOptionResponse{
		ID:          p.ID,
		Category:    string(p.Category),
		Label:       p.Label,
		CreatedByID: p.CreatedByID,
		CreatedAt:   p.CreatedAt,
	}
}

func FromParamOptions(items []entities.ParamOption) []ParamOptionResponse {
	out := make([]ParamOptionResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromParamOption(p))
	}
	return out
}
