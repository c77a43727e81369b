package request

import (
	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
)

type ProposalItemRequest struct {
	EquipmentID     string  `json:"equipment_id" binding:"required"`
	Quantity        int     `json:"quantity"`
	DiscountPercent float64 `json:"discount_percent"`
	UnitPrice       float64 `json:"unit_price"`
}

// ProposalRequest is the payload for creating or replacing a proposal. On
// update a nil Items keeps the current snapshot.
type ProposalRequest struct {
	Company         string                `json:"company" binding:"required"`
	CNPJ            string                `json:"cnpj"`
	ClientName      string                `json:"client_name" binding:"required"`
	Email           string                `json:"email" binding:"required"`
	Telefone        string                `json:"telefone" binding:"required"`
	Pagamento       string                `json:"pagamento"`
	PrazoEntrega    string                `json:"prazo_entrega"`
	Frete           string                `json:"frete"`
	Validade        string                `json:"validade"`
	Garantia        string                `json:"garantia"`
	GarantiaSistema string                `json:"garantia_sistema"`
	ServicoType     string                `json:"servico_type" binding:"required"`
	ModalidadeType  string                `json:"modalidade_type" binding:"required"`
	OwnerUserID     string                `json:"owner_user_id"`
	EnviarEmail     bool                  `json:"enviar_email"`
	EmailCorpo      string                `json:"email_corpo"`
	EmailCC         string                `json:"email_cc"`
	Items           []ProposalItemRequest `json:"items"`
}

func (r ProposalRequest) items() []usecase.ProposalItemInput {
	if r.Items == nil {
		return nil
	}
	items := make([]usecase.ProposalItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.ProposalItemInput{
			EquipmentID:     it.EquipmentID,
			Quantity:        it.Quantity,
			DiscountPercent: it.DiscountPercent,
			UnitPrice:       it.UnitPrice,
		})
	}
	return items
}

func (r ProposalRequest) ToCreateInput() usecase.CreateProposalInput {
	return usecase.CreateProposalInput{
		Company:         r.Company,
		CNPJ:            r.CNPJ,
		ClientName:      r.ClientName,
		Email:           r.Email,
		Telefone:        r.Telefone,
		Pagamento:       r.Pagamento,
		PrazoEntrega:    r.PrazoEntrega,
		Frete:           r.Frete,
		Validade:        r.Validade,
		Garantia:        r.Garantia,
		GarantiaSistema: r.GarantiaSistema,
		ServicoType:     entities.ServicoType(r.ServicoType),
		ModalidadeType:  entities.ModalidadeType(r.ModalidadeType),
		OwnerUserID:     r.OwnerUserID,
		EnviarEmail:     r.EnviarEmail,
		EmailCorpo:      r.EmailCorpo,
		EmailCC:         r.EmailCC,
		Items:           r.items(),
	}
}

func (r ProposalRequest) ToUpdateInput() usecase.UpdateProposalInput {
	return usecase.UpdateProposalInput{
		Company:         r.Company,
		CNPJ:            r.CNPJ,
		ClientName:      r.ClientName,
		Email:           r.Email,
		Telefone:        r.Telefone,
		Pagamento:       r.Pagamento,
		PrazoEntrega:    r.PrazoEntrega,
		Frete:           r.Frete,
		Validade:        r.Validade,
		Garantia:        r.Garantia,
		GarantiaSistema: r.GarantiaSistema,
		ServicoType:     entities.ServicoType(r.ServicoType),
		ModalidadeType:  entities.ModalidadeType(r.ModalidadeType),
		EnviarEmail:     r.EnviarEmail,
		EmailCorpo:      r.EmailCorpo,
		EmailCC:         r.EmailCC,
		Items:           r.items(),
	}
}

// SendProposalEmailRequest carries the optional overrides for mailing a
// proposal. Blank fields fall back to the values stored on the proposal.
type SendProposalEmailRequest struct {
	Corpo string `json:"corpo"`
	CC    string `json:"cc"`
}
