package request

import (
	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
)

type CreateUserRequest struct {
	Usuario      string `json:"usuario" binding:"required"`
	NomeCompleto string `json:"nome_completo" binding:"required"`
	Senha        string `json:"senha" binding:"required"`
	Tipo         string `json:"tipo" binding:"required"`
	Email        string `json:"email"`
	ProxNum      int    `json:"prox_num"`
}

func (r CreateUserRequest) ToInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Usuario:      r.Usuario,
		NomeCompleto: r.NomeCompleto,
		Senha:        r.Senha,
		Tipo:         entities.UserRole(r.Tipo),
		Email:        r.Email,
		ProxNum:      r.ProxNum,
	}
}

// UpdateUserRequest carries only the fields to change; blank senha keeps the
// current password.
type UpdateUserRequest struct {
	NomeCompleto string `json:"nome_completo"`
	Senha        string `json:"senha"`
	Tipo         string `json:"tipo"`
	Email        string `json:"email"`
	ProxNum      int    `json:"prox_num"`
}

func (r UpdateUserRequest) ToInput() usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		NomeCompleto: r.NomeCompleto,
		Senha:        r.Senha,
		Tipo:         entities.UserRole(r.Tipo),
		Email:        r.Email,
		ProxNum:      r.ProxNum,
	}
}
