package interfaces

import (
	"context"
	"errors"
)

// ErrCompanyNotFound reports that the public registry has no company for the
// queried CNPJ.
var ErrCompanyNotFound = errors.New("empresa não encontrada para o CNPJ informado")

// CompanyInfo is the subset of registry data used to prefill a proposal.
type CompanyInfo struct {
	RazaoSocial string `json:"razao_social"`
	CNPJ        string `json:"cnpj"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
}

// ICNPJGateway abstracts the public CNPJ registry (publica.cnpj.ws).

type ICNPJGateway interface {
	Lookup(ctx context.Context, cnpj string) (CompanyInfo, error)
}
