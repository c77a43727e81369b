package docgen

import (
	"fmt"
	"strings"

	"github.com/vktkrum1/sistema-de-propostas/internal/docx"
)

// buildFieldMap produces the merge-field values for one render. The key set
// is fixed: it mirrors the placeholders of the proposal template.
func buildFieldMap(req RenderRequest, rawPhone string) map[string]string {
	p := req.Proposal

	date := ""
	if !p.CreatedAt.IsZero() {
		date = p.CreatedAt.Format("02/01/2006")
	}

	dadosTopo := fmt.Sprintf(
		"%s / %s / %s / %s\nTelefone: %s  E-mail: %s",
		p.Company, p.CNPJ, p.ClientName, date, rawPhone, p.Email,
	)

	condicoes := strings.Join([]string{
		"CONDIÇÕES COMERCIAIS:",
		". Condições de Pagamento (Equipamento): " + p.Pagamento,
		". Prazo de entrega: " + p.PrazoEntrega,
		". Frete: " + p.Frete,
		". Validade da Proposta: " + p.Validade,
		". Garantia do Equipamento: " + p.Garantia,
		". Garantia do Sistema: " + p.GarantiaSistema,
	}, "\n")

	return map[string]string{
		"empresa":              p.Company,
		"cnpj":                 p.CNPJ,
		"cliente":              p.ClientName,
		"email":                p.Email,
		"telefone":             rawPhone,
		"numero":               rawPhone,
		"pagamento":            p.Pagamento,
		"prazo_entrega":        p.PrazoEntrega,
		"frete":                p.Frete,
		"validade":             p.Validade,
		"garantia":             p.Garantia,
		"garantia_sistema":     p.GarantiaSistema,
		"proposta_cod":         req.ProposalCode,
		"condicoes_comerciais": condicoes,
		"nome_colaborador":     req.CollaboratorName,
		"email_colaborador":    req.CollaboratorEmail,
		"data":                 date,
		"dados_topo":           dadosTopo,
	}
}

// substituteFields replaces every "{{ campo }}" token across all paragraphs,
// including paragraphs nested in table cells. A paragraph is rewritten as a
// single run only when at least one token matched, so formatting elsewhere in
// the document is untouched; tokens with no mapping stay literal.
func substituteFields(doc *docx.Document, fields map[string]string) {
	for _, p := range doc.AllParagraphs() {
		original := p.Text()
		replaced := original
		for name, value := range fields {
			token := "{{ " + name + " }}"
			if strings.Contains(replaced, token) {
				replaced = strings.ReplaceAll(replaced, token, value)
			}
		}
		if replaced != original {
			p.SetText(replaced)
		}
	}
}
