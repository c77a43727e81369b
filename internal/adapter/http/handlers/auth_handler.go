package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/dto/request"
	response "github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/dto/response"
	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
	"github.com/vktkrum1/sistema-de-propostas/pkg"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Informe usuário e senha", http.StatusBadRequest)

// TokenIssuer signs a bearer token for an authenticated account.
type TokenIssuer interface {
	Issue(u entities.User) (string, error)
}

// AuthHandler handles login requests.

type AuthHandler struct {
	users  usecase.IUserUseCase
	tokens TokenIssuer
}

func NewAuthHandler(users usecase.IUserUseCase, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Login verifies the credentials and returns a bearer token with the account.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), payload.Usuario, payload.Senha)
	if err != nil {
		log.Printf("[auth][handler] login failed usuario=%s err=%v", payload.Usuario, err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		log.Printf("[auth][handler] token issue failed usuario=%s err=%v", user.Usuario, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro interno ao autenticar", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[auth][handler] login success usuario=%s role=%s", user.Usuario, user.Tipo)

	c.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  response.FromUser(user),
	})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Usuário ou senha inválidos", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno ao autenticar", err, http.StatusInternalServerError)
	}
}
