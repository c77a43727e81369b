package usecase

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/vktkrum1/sistema-de-propostas/internal/docgen"
	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"
)

var (
	ErrProposalNotFound    = errors.New("proposta não encontrada")
	ErrInvalidProposalID   = errors.New("id de proposta inválido")
	ErrInvalidProposalData = errors.New("dados da proposta inválidos")
	ErrNoLineItems         = errors.New("selecione ao menos um equipamento")
	ErrEmailDomainNoMX     = errors.New("domínio de e-mail sem registro MX")
	ErrInvalidEmailAddress = errors.New("e-mail inválido")
	ErrEmailBodyRequired   = errors.New("informe o conteúdo do e-mail para enviá-lo ao cliente")
	ErrInvalidFormat       = errors.New("formato inválido: use docx ou pdf")
	ErrForbidden           = errors.New("acesso negado")
)

var emailSplitRe = regexp.MustCompile(`[;,\n]+`)

const proposalsPerPage = 10

// Actor identifies the authenticated caller for ownership checks. Admin and
// gestor roles see every proposal; usuario only its own.
type Actor struct {
	ID   string
	Role entities.UserRole
}

func (a Actor) canAccess(p entities.Proposal) bool {
	return a.Role.Manages() || p.UserID == a.ID
}

// ProposalItemInput selects one catalog equipment with the values negotiated
// for this proposal. UnitPrice <= 0 keeps the catalog price.
type ProposalItemInput struct {
	EquipmentID     string
	Quantity        int
	DiscountPercent float64
	UnitPrice       float64
}

// CreateProposalInput carries everything needed to register a proposal.
// OwnerUserID may put the proposal under another collaborator; blank keeps
// the acting user as owner.
type CreateProposalInput struct {
	Company         string
	CNPJ            string
	ClientName      string
	Email           string
	Telefone        string
	Pagamento       string
	PrazoEntrega    string
	Frete           string
	Validade        string
	Garantia        string
	GarantiaSistema string
	ServicoType     entities.ServicoType
	ModalidadeType  entities.ModalidadeType
	OwnerUserID     string
	EnviarEmail     bool
	EmailCorpo      string
	EmailCC         string
	Items           []ProposalItemInput
}

// UpdateProposalInput carries the mutable fields of an existing proposal.
// Items, when non-nil, replace the frozen snapshot. Filename never changes.
type UpdateProposalInput struct {
	Company         string
	CNPJ            string
	ClientName      string
	Email           string
	Telefone        string
	Pagamento       string
	PrazoEntrega    string
	Frete           string
	Validade        string
	Garantia        string
	GarantiaSistema string
	ServicoType     entities.ServicoType
	ModalidadeType  entities.ModalidadeType
	EnviarEmail     bool
	EmailCorpo      string
	EmailCC         string
	Items           []ProposalItemInput
}

// HistoryQuery filters the proposal history listing.
type HistoryQuery struct {
	Page           int
	Date           string
	ServicoType    entities.ServicoType
	ModalidadeType entities.ModalidadeType
	UserID         string
}

// HistoryPage is one page of proposal history, newest first.
type HistoryPage struct {
	Items      []entities.Proposal
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// IProposalUseCase exposes proposal operations.

type IProposalUseCase interface {
	Create(ctx context.Context, actor Actor, in CreateProposalInput) (entities.Proposal, error)
	GetByID(ctx context.Context, actor Actor, id string) (entities.Proposal, error)
	History(ctx context.Context, actor Actor, q HistoryQuery) (HistoryPage, error)
	Update(ctx context.Context, actor Actor, id string, in UpdateProposalInput) (entities.Proposal, error)
	Delete(ctx context.Context, actor Actor, id string) error
	RenderDocument(ctx context.Context, actor Actor, id, format string) ([]byte, string, error)
	SendEmail(ctx context.Context, actor Actor, id, corpo, ccRaw string) error
}

type ProposalUseCase struct {
	proposals  interfaces.IProposalRepository
	equipments interfaces.IEquipmentRepository
	users      interfaces.IUserRepository
	renderer   interfaces.IProposalRenderer
	mailer     interfaces.IMailer

	lookupMX func(domain string) ([]*net.MX, error)
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	proposals interfaces.IProposalRepository,
	equipments interfaces.IEquipmentRepository,
	users interfaces.IUserRepository,
	renderer interfaces.IProposalRenderer,
	mailer interfaces.IMailer,
) *ProposalUseCase {
	return &ProposalUseCase{
		proposals:  proposals,
		equipments: equipments,
		users:      users,
		renderer:   renderer,
		mailer:     mailer,
		lookupMX:   net.LookupMX,
	}
}

func (u *ProposalUseCase) Create(ctx context.Context, actor Actor, in CreateProposalInput) (entities.Proposal, error) {
	in.Company = strings.TrimSpace(in.Company)
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.Email = strings.TrimSpace(in.Email)
	in.Telefone = strings.TrimSpace(in.Telefone)
	if in.Company == "" || in.ClientName == "" || in.Email == "" || in.Telefone == "" {
		return entities.Proposal{}, ErrInvalidProposalData
	}
	if in.ServicoType != entities.ServicoPonto && in.ServicoType != entities.ServicoAcesso {
		return entities.Proposal{}, ErrInvalidProposalData
	}
	if in.ModalidadeType != entities.ModalidadeAquisicao && in.ModalidadeType != entities.ModalidadeLocacao {
		return entities.Proposal{}, ErrInvalidProposalData
	}
	if len(in.Items) == 0 {
		return entities.Proposal{}, ErrNoLineItems
	}
	if err := u.checkEmailDomain(in.Email); err != nil {
		return entities.Proposal{}, err
	}

	corpo := strings.TrimSpace(in.EmailCorpo)
	ccRaw := strings.TrimSpace(in.EmailCC)
	if in.EnviarEmail {
		if corpo == "" {
			return entities.Proposal{}, ErrEmailBodyRequired
		}
		if _, err := parseEmailList(ccRaw); err != nil {
			return entities.Proposal{}, err
		}
	} else {
		corpo, ccRaw = "", ""
	}

	owner, err := u.resolveOwner(ctx, actor, in.OwnerUserID)
	if err != nil {
		return entities.Proposal{}, err
	}

	items, err := u.snapshotItems(ctx, in.Items)
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(items) == 0 {
		return entities.Proposal{}, ErrNoLineItems
	}

	numero, err := u.users.NextProposalNumber(ctx, owner.ID)
	if err != nil {
		return entities.Proposal{}, err
	}

	now := time.Now().UTC()
	p := entities.Proposal{
		ID:              uuid.NewString(),
		Company:         in.Company,
		CNPJ:            strings.TrimSpace(in.CNPJ),
		ClientName:      in.ClientName,
		Email:           in.Email,
		Telefone:        in.Telefone,
		Pagamento:       in.Pagamento,
		PrazoEntrega:    in.PrazoEntrega,
		Frete:           in.Frete,
		Validade:        in.Validade,
		Garantia:        in.Garantia,
		GarantiaSistema: in.GarantiaSistema,
		ServicoType:     in.ServicoType,
		ModalidadeType:  in.ModalidadeType,
		UserID:          owner.ID,
		Filename:        fmt.Sprintf("PROPOSTA COMERCIAL %s%02d", userInitials(owner), numero),
		EnviarEmail:     in.EnviarEmail,
		EmailCorpo:      corpo,
		EmailCC:         ccRaw,
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.proposals.Create(ctx, p)
}

func (u *ProposalUseCase) GetByID(ctx context.Context, actor Actor, id string) (entities.Proposal, error) {
	return u.getOwned(ctx, actor, id)
}

func (u *ProposalUseCase) History(ctx context.Context, actor Actor, q HistoryQuery) (HistoryPage, error) {
	filter := interfaces.ProposalFilter{
		Date:           strings.TrimSpace(q.Date),
		ServicoType:    q.ServicoType,
		ModalidadeType: q.ModalidadeType,
		UserID:         q.UserID,
	}
	if !actor.Role.Manages() {
		filter.UserID = actor.ID
	}

	all, err := u.proposals.List(ctx, filter)
	if err != nil {
		return HistoryPage{}, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	total := len(all)
	totalPages := (total + proposalsPerPage - 1) / proposalsPerPage
	start := (page - 1) * proposalsPerPage
	if start > total {
		start = total
	}
	end := start + proposalsPerPage
	if end > total {
		end = total
	}
	return HistoryPage{
		Items:      all[start:end],
		Page:       page,
		PerPage:    proposalsPerPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (u *ProposalUseCase) Update(ctx context.Context, actor Actor, id string, in UpdateProposalInput) (entities.Proposal, error) {
	p, err := u.getOwned(ctx, actor, id)
	if err != nil {
		return entities.Proposal{}, err
	}

	in.Company = strings.TrimSpace(in.Company)
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.Email = strings.TrimSpace(in.Email)
	in.Telefone = strings.TrimSpace(in.Telefone)
	if in.Company == "" || in.ClientName == "" || in.Email == "" || in.Telefone == "" {
		return entities.Proposal{}, ErrInvalidProposalData
	}
	if in.Email != p.Email {
		if err := u.checkEmailDomain(in.Email); err != nil {
			return entities.Proposal{}, err
		}
	}

	p.Company = in.Company
	p.CNPJ = strings.TrimSpace(in.CNPJ)
	p.ClientName = in.ClientName
	p.Email = in.Email
	p.Telefone = in.Telefone
	p.Pagamento = in.Pagamento
	p.PrazoEntrega = in.PrazoEntrega
	p.Frete = in.Frete
	p.Validade = in.Validade
	p.Garantia = in.Garantia
	p.GarantiaSistema = in.GarantiaSistema
	if in.ServicoType != "" {
		p.ServicoType = in.ServicoType
	}
	if in.ModalidadeType != "" {
		p.ModalidadeType = in.ModalidadeType
	}
	p.EnviarEmail = in.EnviarEmail
	p.EmailCorpo = strings.TrimSpace(in.EmailCorpo)
	p.EmailCC = strings.TrimSpace(in.EmailCC)

	if in.Items != nil {
		items, err := u.snapshotItems(ctx, in.Items)
		if err != nil {
			return entities.Proposal{}, err
		}
		if len(items) == 0 {
			return entities.Proposal{}, ErrNoLineItems
		}
		p.Items = items
	}

	p.UpdatedAt = time.Now().UTC()
	return u.proposals.Update(ctx, p)
}

func (u *ProposalUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	p, err := u.getOwned(ctx, actor, id)
	if err != nil {
		return err
	}
	return u.proposals.Delete(ctx, p.ID)
}

// RenderDocument produces the proposal document and the download filename.
func (u *ProposalUseCase) RenderDocument(ctx context.Context, actor Actor, id, format string) ([]byte, string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "pdf"
	}
	if format != "docx" && format != "pdf" {
		return nil, "", ErrInvalidFormat
	}

	p, err := u.getOwned(ctx, actor, id)
	if err != nil {
		return nil, "", err
	}

	req, err := u.renderRequest(ctx, p, format)
	if err != nil {
		return nil, "", err
	}
	data, err := u.renderer.Render(ctx, req)
	if err != nil {
		return nil, "", err
	}
	return data, p.Filename + "." + format, nil
}

// SendEmail renders the proposal as PDF and mails it to the client, with the
// optional cc list parsed from the raw field (split on ; , or newlines).
func (u *ProposalUseCase) SendEmail(ctx context.Context, actor Actor, id, corpo, ccRaw string) error {
	p, err := u.getOwned(ctx, actor, id)
	if err != nil {
		return err
	}

	corpo = strings.TrimSpace(corpo)
	if corpo == "" {
		corpo = strings.TrimSpace(p.EmailCorpo)
	}
	if corpo == "" {
		corpo = fmt.Sprintf(
			"Olá %s,\n\nSegue em anexo a proposta comercial referente ao nosso atendimento.\n\nFico à disposição para dúvidas.",
			p.ClientName)
	}

	if strings.TrimSpace(ccRaw) == "" {
		ccRaw = p.EmailCC
	}
	cc, err := parseEmailList(ccRaw)
	if err != nil {
		return err
	}

	req, err := u.renderRequest(ctx, p, "pdf")
	if err != nil {
		return err
	}
	pdf, err := u.renderer.Render(ctx, req)
	if err != nil {
		return err
	}

	return u.mailer.SendProposal(ctx, interfaces.ProposalMail{
		To:             []string{p.Email},
		CC:             cc,
		Subject:        p.Filename,
		Body:           corpo,
		AttachmentName: p.Filename + ".pdf",
		AttachmentPDF:  pdf,
	})
}

func (u *ProposalUseCase) getOwned(ctx context.Context, actor Actor, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.proposals.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	if !actor.canAccess(p) {
		return entities.Proposal{}, ErrForbidden
	}
	return p, nil
}

func (u *ProposalUseCase) resolveOwner(ctx context.Context, actor Actor, ownerID string) (entities.User, error) {
	id := strings.TrimSpace(ownerID)
	if id == "" || !actor.Role.Manages() {
		id = actor.ID
	}
	owner, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if owner.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return owner, nil
}

// snapshotItems freezes the selected catalog equipments into proposal line
// items. Unknown equipment ids are skipped, matching the permissive form
// handling of the original workflow.
func (u *ProposalUseCase) snapshotItems(ctx context.Context, inputs []ProposalItemInput) ([]entities.ProposalLineItem, error) {
	items := make([]entities.ProposalLineItem, 0, len(inputs))
	for _, in := range inputs {
		eid := strings.TrimSpace(in.EquipmentID)
		if eid == "" {
			continue
		}
		eq, err := u.equipments.GetByID(ctx, eid)
		if err != nil {
			return nil, err
		}
		if eq.ID == "" {
			continue
		}

		qty := in.Quantity
		if qty <= 0 {
			qty = 1
		}
		price := in.UnitPrice
		if price <= 0 {
			price = eq.UnitPrice
		}
		pct := in.DiscountPercent
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}

		items = append(items, entities.ProposalLineItem{
			EquipmentID:      eq.ID,
			Name:             eq.Name,
			Description:      eq.Description,
			IllustrationPath: eq.IllustrationPath,
			UnitPrice:        price,
			Quantity:         qty,
			DiscountPercent:  pct,
		})
	}
	return items, nil
}

func (u *ProposalUseCase) renderRequest(ctx context.Context, p entities.Proposal, format string) (docgen.RenderRequest, error) {
	owner, err := u.users.GetByID(ctx, p.UserID)
	if err != nil {
		return docgen.RenderRequest{}, err
	}

	items := make([]docgen.LineItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, docgen.LineItem{
			Description:      it.Description,
			Name:             it.Name,
			UnitPrice:        it.UnitPrice,
			Quantity:         it.Quantity,
			DiscountPercent:  it.DiscountPercent,
			IllustrationPath: it.IllustrationPath,
		})
	}

	return docgen.RenderRequest{
		Proposal: docgen.ProposalData{
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
			CreatedAt:       p.CreatedAt,
		},
		Items:             items,
		Format:            format,
		ProposalCode:      p.Code(),
		CollaboratorName:  owner.NomeCompleto,
		CollaboratorEmail: owner.Email,
	}, nil
}

func (u *ProposalUseCase) checkEmailDomain(email string) error {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%w: %s", ErrInvalidEmailAddress, email)
	}
	mx, err := u.lookupMX(email[at+1:])
	if err != nil || len(mx) == 0 {
		return ErrEmailDomainNoMX
	}
	return nil
}

// parseEmailList splits a raw cc field on ; , and newlines, validating each
// address the same superficial way the proposal form always did.
func parseEmailList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var out []string
	for _, chunk := range emailSplitRe.Split(raw, -1) {
		addr := strings.TrimSpace(chunk)
		if addr == "" {
			continue
		}
		at := strings.Index(addr, "@")
		if at <= 0 || at == len(addr)-1 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEmailAddress, addr)
		}
		if !strings.Contains(addr[at+1:], ".") {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEmailAddress, addr)
		}
		out = append(out, addr)
	}
	return out, nil
}

// userInitials derives the filename initials from the collaborator's full
// name (first and last given name), falling back to the first two letters of
// the login.
func userInitials(u entities.User) string {
	parts := strings.Fields(u.NomeCompleto)
	var b strings.Builder
	if len(parts) > 0 {
		b.WriteRune(unicode.ToUpper(firstRune(parts[0])))
		if len(parts) > 1 {
			b.WriteRune(unicode.ToUpper(firstRune(parts[len(parts)-1])))
		}
	}
	if b.Len() == 0 {
		login := strings.TrimSpace(u.Usuario)
		if len(login) > 2 {
			login = login[:2]
		}
		return strings.ToUpper(login)
	}
	return b.String()
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
