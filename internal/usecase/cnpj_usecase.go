package usecase

import (
	"context"
	"errors"

	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"
)

var ErrInvalidCNPJ = errors.New("CNPJ inválido: informe 14 dígitos")

// ICNPJUseCase exposes company prefill lookups by CNPJ.

type ICNPJUseCase interface {
	Lookup(ctx context.Context, raw string) (interfaces.CompanyInfo, error)
}

type CNPJUseCase struct {
	gateway interfaces.ICNPJGateway
}

var _ ICNPJUseCase = (*CNPJUseCase)(nil)

func NewCNPJUseCase(gateway interfaces.ICNPJGateway) *CNPJUseCase {
	return &CNPJUseCase{gateway: gateway}
}

// Lookup strips formatting from the raw value and queries the public
// registry with the bare 14 digits.
func (u *CNPJUseCase) Lookup(ctx context.Context, raw string) (interfaces.CompanyInfo, error) {
	digits := make([]byte, 0, 14)
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	if len(digits) != 14 {
		return interfaces.CompanyInfo{}, ErrInvalidCNPJ
	}
	return u.gateway.Lookup(ctx, string(digits))
}
