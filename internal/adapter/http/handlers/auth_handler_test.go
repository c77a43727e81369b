package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/handlers/mocks"
	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
)

type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) Issue(entities.User) (string, error) { return s.token, s.err }

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc, stubIssuer{token: "tok"})

		r := gin.New()
		r.POST("/v1/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewBufferString(`{"usuario":"abilio"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc, stubIssuer{token: "tok"})

		r := gin.New()
		r.POST("/v1/login", h.Login)

		uc.EXPECT().Authenticate(gomock.Any(), "abilio", "errada").Return(entities.User{}, usecase.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewBufferString(`{"usuario":"abilio","senha":"errada"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success returns token and user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc, stubIssuer{token: "tok-123"})

		r := gin.New()
		r.POST("/v1/login", h.Login)

		uc.EXPECT().Authenticate(gomock.Any(), "abilio", "segredo").
			Return(entities.User{ID: "u1", Usuario: "abilio", Tipo: entities.RoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewBufferString(`{"usuario":"abilio","senha":"segredo"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Token string `json:"token"`
			User  struct {
				Usuario string `json:"usuario"`
			} `json:"user"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Token != "tok-123" || body.User.Usuario != "abilio" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("issuer failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc, stubIssuer{err: errors.New("sign")})

		r := gin.New()
		r.POST("/v1/login", h.Login)

		uc.EXPECT().Authenticate(gomock.Any(), "abilio", "segredo").
			Return(entities.User{ID: "u1", Usuario: "abilio"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewBufferString(`{"usuario":"abilio","senha":"segredo"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
