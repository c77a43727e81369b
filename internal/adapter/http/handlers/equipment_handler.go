package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/dto/request"
	response "github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/dto/response"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
	"github.com/vktkrum1/sistema-de-propostas/pkg"
)

var errInvalidEquipmentPayload = pkg.NewDomainErrorSimple("INVALID_EQUIPMENT_INPUT", "Dados de equipamento inválidos", http.StatusBadRequest)

// maxImageUploadBytes caps equipment illustration uploads.
const maxImageUploadBytes = 8 << 20

// EquipmentHandler handles catalog management requests.

type EquipmentHandler struct {
	usecase usecase.IEquipmentUseCase
}

func NewEquipmentHandler(uc usecase.IEquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{usecase: uc}
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var payload request.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEquipmentPayload.HTTPStatus, errInvalidEquipmentPayload.ToHTTPError())
		return
	}

	eq, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[equipment][handler] create failed name=%s err=%v", payload.Name, err)
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[equipment][handler] create success id=%s name=%s", eq.ID, eq.Name)

	c.JSON(http.StatusCreated, response.FromEquipment(eq))
}

func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	eq, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEquipment(eq))
}

func (h *EquipmentHandler) ListEquipments(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEquipments(items))
}

func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	var payload request.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEquipmentPayload.HTTPStatus, errInvalidEquipmentPayload.ToHTTPError())
		return
	}

	eq, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		log.Printf("[equipment][handler] update failed id=%s err=%v", c.Param("id"), err)
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEquipment(eq))
}

func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("[equipment][handler] delete failed id=%s err=%v", c.Param("id"), err)
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadEquipmentImage receives a multipart "image" file, normalizes it into
// the catalog thumbnail and records its path on the equipment.
func (h *EquipmentHandler) UploadEquipmentImage(c *gin.Context) {
	id := c.Param("id")
	fileHeader, err := c.FormFile("image")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Envie o arquivo no campo 'image'", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if fileHeader.Size > maxImageUploadBytes {
		appErr := pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Imagem excede o tamanho máximo de 8MB", http.StatusRequestEntityTooLarge)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	eq, err := h.usecase.AttachImage(c.Request.Context(), id, fileHeader.Filename, data)
	if err != nil {
		log.Printf("[equipment][handler] image upload failed id=%s file=%s err=%v", id, fileHeader.Filename, err)
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[equipment][handler] image upload success id=%s path=%s", eq.ID, eq.IllustrationPath)

	c.JSON(http.StatusOK, response.FromEquipment(eq))
}

func mapEquipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEquipmentID), errors.Is(err, usecase.ErrInvalidEquipmentData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Dados de equipamento inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedImageExt):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_IMAGE", "Formato de imagem não aceito: use PNG, JPG, JPEG ou WEBP", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidImage):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE", "Arquivo de imagem inválido ou corrompido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipamento não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
