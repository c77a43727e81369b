package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	request "github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/dto/request"
	response "github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/dto/response"
	"github.com/vktkrum1/sistema-de-propostas/internal/docgen"
	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
	"github.com/vktkrum1/sistema-de-propostas/pkg"
)

var errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Dados da proposta inválidos", http.StatusBadRequest)

const (
	contentTypePDF  = "application/pdf"
	contentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ProposalHandler handles proposal creation, history, document download and
// client mailing.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), actorFrom(c), payload.ToCreateInput())
	if err != nil {
		log.Printf("[proposal][handler] create failed company=%s err=%v", payload.Company, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[proposal][handler] create success id=%s filename=%q", p.ID, p.Filename)

	c.JSON(http.StatusCreated, response.FromProposal(p))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// History lists proposals newest first, paginated in blocks of 10. Managers
// may filter by user_id; other roles always see their own proposals only.
func (h *ProposalHandler) History(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	q := usecase.HistoryQuery{
		Page:           page,
		Date:           c.Query("date"),
		ServicoType:    entities.ServicoType(c.Query("servico_type")),
		ModalidadeType: entities.ModalidadeType(c.Query("modalidade_type")),
		UserID:         c.Query("user_id"),
	}

	result, err := h.usecase.History(c.Request.Context(), actorFrom(c), q)
	if err != nil {
		log.Printf("[proposal][handler] history failed err=%v", err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHistoryPage(result))
}

func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Update(c.Request.Context(), actorFrom(c), c.Param("id"), payload.ToUpdateInput())
	if err != nil {
		log.Printf("[proposal][handler] update failed id=%s err=%v", c.Param("id"), err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(p))
}

func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		log.Printf("[proposal][handler] delete failed id=%s err=%v", c.Param("id"), err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadDocument renders the proposal and streams it as an attachment. The
// "format" query selects docx or pdf; pdf is the default.
func (h *ProposalHandler) DownloadDocument(c *gin.Context) {
	id := c.Param("id")
	format := c.Query("format")

	data, filename, err := h.usecase.RenderDocument(c.Request.Context(), actorFrom(c), id, format)
	if err != nil {
		log.Printf("[proposal][handler] render failed id=%s format=%s err=%v", id, format, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[proposal][handler] render success id=%s file=%q bytes=%d", id, filename, len(data))

	contentType := contentTypePDF
	if strings.HasSuffix(filename, ".docx") {
		contentType = contentTypeDOCX
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// SendProposalEmail renders the proposal as PDF and mails it to the client.
func (h *ProposalHandler) SendProposalEmail(c *gin.Context) {
	id := c.Param("id")
	// The body is optional; blank fields fall back to the stored corpo and cc.
	var payload request.SendProposalEmailRequest
	_ = c.ShouldBindJSON(&payload)

	if err := h.usecase.SendEmail(c.Request.Context(), actorFrom(c), id, payload.Corpo, payload.CC); err != nil {
		log.Printf("[proposal][handler] email failed id=%s err=%v", id, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[proposal][handler] email success id=%s", id)

	c.JSON(http.StatusOK, gin.H{"status": "enviado"})
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidProposalData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Dados da proposta inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoLineItems):
		return pkg.NewDomainErrorSimple("NO_LINE_ITEMS", "Selecione ao menos um equipamento", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailDomainNoMX):
		return pkg.NewDomainErrorSimple("EMAIL_DOMAIN_NO_MX", "Domínio de e-mail sem registro MX", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEmailAddress):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "E-mail inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailBodyRequired):
		return pkg.NewDomainErrorSimple("EMAIL_BODY_REQUIRED", "Informe o conteúdo do e-mail para enviá-lo ao cliente", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFormat):
		return pkg.NewDomainErrorSimple("INVALID_FORMAT", "Formato inválido: use docx ou pdf", http.StatusBadRequest)
	case errors.Is(err, docgen.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Telefone inválido: informe DDI+DDD+número, por exemplo +55 11 912345678", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Acesso negado", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposta não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "Colaborador não encontrado", http.StatusNotFound)
	case errors.Is(err, docgen.ErrConversionUnavailable):
		return pkg.NewDomainErrorSimple("CONVERSION_UNAVAILABLE", "Conversão para PDF indisponível no momento", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
