package entities

import "time"

// ServicoType classifies the service covered by a proposal.
type ServicoType string

const (
	ServicoPonto  ServicoType = "Ponto"
	ServicoAcesso ServicoType = "Acesso"
)

// ModalidadeType classifies the commercial modality of a proposal.
type ModalidadeType string

const (
	ModalidadeAquisicao ModalidadeType = "Aquisição"
	ModalidadeLocacao   ModalidadeType = "Locação"
)

// ProposalLineItem is one equipment line frozen onto a proposal at creation
// time. Quantity, discount and price are the values negotiated for this
// proposal; the catalog entity keeps its own canonical values and is never
// mutated by a render.
type ProposalLineItem struct {
	EquipmentID      string  `json:"equipment_id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	IllustrationPath string  `json:"illustration_path"`
	UnitPrice        float64 `json:"unit_price"`
	Quantity         int     `json:"quantity"`
	DiscountPercent  float64 `json:"discount_percent"`
}

// Proposal is one commercial proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - user_id attribute carries ownership for history filtering.
//
// Filename is allocated once from the owning user's sequence at creation
// ("PROPOSTA COMERCIAL <iniciais><NN>") and never regenerated.
type Proposal struct {
	ID         string `json:"id"`
	Company    string `json:"company"`
	CNPJ       string `json:"cnpj"`
	ClientName string `json:"client_name"`
	Email      string `json:"email"`
	Telefone   string `json:"telefone"`

	Pagamento       string `json:"pagamento"`
	PrazoEntrega    string `json:"prazo_entrega"`
	Frete           string `json:"frete"`
	Validade        string `json:"validade"`
	Garantia        string `json:"garantia"`
	GarantiaSistema string `json:"garantia_sistema"`

	ServicoType    ServicoType    `json:"servico_type"`
	ModalidadeType ModalidadeType `json:"modalidade_type"`

	UserID   string `json:"user_id"`
	Filename string `json:"filename"`

	EnviarEmail bool   `json:"enviar_email"`
	EmailCorpo  string `json:"email_corpo"`
	EmailCC     string `json:"email_cc"`

	Items []ProposalLineItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Code is the short proposal code used inside the rendered document, the
// last token of the allocated filename.
func (p Proposal) Code() string {
	for i := len(p.Filename) - 1; i >= 0; i-- {
		if p.Filename[i] == ' ' {
			return p.Filename[i+1:]
		}
	}
	return p.Filename
}
