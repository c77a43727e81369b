package response

import "github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"

type CNPJResponse struct {
	Company  string `json:"company"`
	CNPJ     string `json:"cnpj"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

func FromCompanyInfo(info interfaces.CompanyInfo) CNPJResponse {
	return CNPJResponse{
		Company:  info.RazaoSocial,
		CNPJ:     info.CNPJ,
		Email:    info.Email,
		Telefone: info.Telefone,
	}
}
