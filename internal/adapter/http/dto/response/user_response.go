package response

import (
	"time"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
)

type UserResponse struct {
	ID           string    `json:"id"`
	Usuario      string    `json:"usuario"`
	NomeCompleto string    `json:"nome_completo"`
	Tipo         string    `json:"tipo"`
	Email        string    `json:"email"`
	ProxNum      int       `json:"prox_num"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Usuario:      u.Usuario,
		NomeCompleto: u.NomeCompleto,
		Tipo:         string(u.Tipo),
		Email:        u.Email,
		ProxNum:      u.ProxNum,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// LoginResponse carries the bearer token and the authenticated account.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
