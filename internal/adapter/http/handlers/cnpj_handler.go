package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/dto/response"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"
	"github.com/vktkrum1/sistema-de-propostas/pkg"
)

// CNPJHandler proxies company lookups to the public CNPJ registry so the
// proposal form can prefill client data.

type CNPJHandler struct {
	usecase usecase.ICNPJUseCase
}

func NewCNPJHandler(uc usecase.ICNPJUseCase) *CNPJHandler {
	return &CNPJHandler{usecase: uc}
}

func (h *CNPJHandler) LookupCNPJ(c *gin.Context) {
	raw := c.Param("cnpj")
	info, err := h.usecase.Lookup(c.Request.Context(), raw)
	if err != nil {
		log.Printf("[cnpj][handler] lookup failed cnpj=%s err=%v", raw, err)
		appErr := mapCNPJError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompanyInfo(info))
}

func mapCNPJError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCNPJ):
		return pkg.NewDomainErrorSimple("INVALID_CNPJ", "CNPJ inválido: informe 14 dígitos", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrCompanyNotFound):
		return pkg.NewDomainErrorSimple("COMPANY_NOT_FOUND", "CNPJ não encontrado na base pública", http.StatusNotFound)
	default:
		return pkg.NewDomainError("REGISTRY_UNAVAILABLE", "Serviço de consulta de CNPJ indisponível", err, http.StatusBadGateway)
	}
}
