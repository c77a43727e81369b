package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/dto/request"
	response "github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/dto/response"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
	"github.com/vktkrum1/sistema-de-propostas/pkg"
)

var errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Dados de usuário inválidos", http.StatusBadRequest)

// UserHandler handles account management requests. Routes using it sit
// behind the admin gate.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[user][handler] create failed usuario=%s err=%v", payload.Usuario, err)
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[user][handler] create success usuario=%s id=%s", user.Usuario, user.ID)

	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var payload request.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		log.Printf("[user][handler] update failed id=%s err=%v", c.Param("id"), err)
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("[user][handler] delete failed id=%s err=%v", c.Param("id"), err)
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidUserData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Dados de usuário inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsuarioTaken):
		return pkg.NewDomainErrorSimple("USUARIO_TAKEN", "Nome de usuário já cadastrado", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "Usuário não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
