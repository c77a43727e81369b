package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/dto/request"
	response "github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/dto/response"
	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/middleware"
	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
	"github.com/vktkrum1/sistema-de-propostas/pkg"
)

var errInvalidParamPayload = pkg.NewDomainErrorSimple("INVALID_PARAM_INPUT", "Categoria ou valor de parâmetro inválido", http.StatusBadRequest)

// ParamOptionHandler handles the configurable proposal parameter options
// (payment terms, delivery, freight, validity and warranties).

type ParamOptionHandler struct {
	usecase usecase.IParamOptionUseCase
}

func NewParamOptionHandler(uc usecase.IParamOptionUseCase) *ParamOptionHandler {
	return &ParamOptionHandler{usecase: uc}
}

func (h *ParamOptionHandler) CreateParamOption(c *gin.Context) {
	var payload request.CreateParamOptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidParamPayload.HTTPStatus, errInvalidParamPayload.ToHTTPError())
		return
	}

	opt, err := h.usecase.Create(
		c.Request.Context(),
		entities.ParamCategory(payload.Category),
		payload.Label,
		c.GetString(middleware.CtxUserIDKey),
	)
	if err != nil {
		log.Printf("[param][handler] create failed category=%s err=%v", payload.Category, err)
		appErr := mapParamOptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromParamOption(opt))
}

func (h *ParamOptionHandler) ListParamOptions(c *gin.Context) {
	opts, err := h.usecase.ListByCategory(c.Request.Context(), entities.ParamCategory(c.Query("category")))
	if err != nil {
		appErr := mapParamOptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromParamOptions(opts))
}

func (h *ParamOptionHandler) DeleteParamOption(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("[param][handler] delete failed id=%s err=%v", c.Param("id"), err)
		appErr := mapParamOptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapParamOptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidParamID), errors.Is(err, usecase.ErrInvalidParamData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Categoria ou valor de parâmetro inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrParamOptionExists):
		return pkg.NewDomainErrorSimple("PARAM_OPTION_EXISTS", "Opção já cadastrada para esta categoria", http.StatusConflict)
	case errors.Is(err, usecase.ErrParamOptionNotFound):
		return pkg.NewDomainErrorSimple("PARAM_OPTION_NOT_FOUND", "Opção de parâmetro não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
