package response

import (
	"time"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
)

type ProposalItemResponse struct {
	EquipmentID      string  `json:"equipment_id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	IllustrationPath string  `json:"illustration_path"`
	UnitPrice        float64 `json:"unit_price"`
	Quantity         int     `json:"quantity"`
	DiscountPercent  float64 `json:"discount_percent"`
}

type ProposalResponse struct {
	ID              string                 `json:"id"`
	Company         string                 `json:"company"`
	CNPJ            string                 `json:"cnpj"`
	ClientName      string                 `json:"client_name"`
	Email           string                 `json:"email"`
	Telefone        string                 `json:"telefone"`
	Pagamento       string                 `json:"pagamento"`
	PrazoEntrega    string                 `json:"prazo_entrega"`
	Frete           string                 `json:"frete"`
	Validade        string                 `json:"validade"`
	Garantia        string                 `json:"garantia"`
	GarantiaSistema string                 `json:"garantia_sistema"`
	ServicoType     string                 `json:"servico_type"`
	ModalidadeType  string                 `json:"modalidade_type"`
	UserID          string                 `json:"user_id"`
	Filename        string                 `json:"filename"`
	Code            string                 `json:"code"`
	EnviarEmail     bool                   `json:"enviar_email"`
	EmailCorpo      string                 `json:"email_corpo"`
	EmailCC         string                 `json:"email_cc"`
	Items           []ProposalItemResponse `json:"items"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	items := make([]ProposalItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, ProposalItemResponse{
			EquipmentID:      it.EquipmentID,
			Name:             it.Name,
			Description:      it.Description,
			IllustrationPath: it.IllustrationPath,
			UnitPrice:        it.UnitPrice,
			Quantity:         it.Quantity,
			DiscountPercent:  it.DiscountPercent,
		})
	}
	return ProposalResponse{
		ID:              p.ID,
		Company:         p.Company,
		CNPJ:            p.CNPJ,
		ClientName:      p.ClientName,
		Email:           p.Email,
		Telefone:        p.Telefone,
		Pagamento:       p.Pagamento,
		PrazoEntrega:    p.PrazoEntrega,
		Frete:           p.Frete,
		Validade:        p.Validade,
		Garantia:        p.Garantia,
		GarantiaSistema: p.GarantiaSistema,
		ServicoType:     string(p.ServicoType),
		ModalidadeType:  string(p.ModalidadeType),
		UserID:          p.UserID,
		Filename:        p.Filename,
		Code:            p.Code(),
		EnviarEmail:     p.EnviarEmail,
		EmailCorpo:      p.EmailCorpo,
		EmailCC:         p.EmailCC,
		Items:           items,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ProposalHistoryResponse is one page of the proposal history, newest first.
type ProposalHistoryResponse struct {
	Items      []ProposalResponse `json:"items"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	Total      int                `json:"total"`
	TotalPages int                `json:"total_pages"`
}

func FromHistoryPage(p usecase.HistoryPage) ProposalHistoryResponse {
	items := make([]ProposalResponse, 0, len(p.Items))
	for _, proposal := range p.Items {
		items = append(items, FromProposal(proposal))
	}
	return ProposalHistoryResponse{
		Items:      items,
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}
