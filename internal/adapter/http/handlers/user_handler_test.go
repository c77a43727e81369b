package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/handlers/mocks"
	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
)

func TestUserHandler_CreateUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", h.CreateUser)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"usuario":"abilio"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate login maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", h.CreateUser)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, usecase.ErrUsuarioTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/users",
			bytes.NewBufferString(`{"usuario":"abilio","nome_completo":"Abílio Dias","senha":"segredo","tipo":"usuario"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success omits password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", h.CreateUser)

		uc.EXPECT().
			Create(gomock.Any(), usecase.CreateUserInput{
				Usuario:      "abilio",
				NomeCompleto: "Abílio Dias",
				Senha:        "segredo",
				Tipo:         entities.RoleUsuario,
			}).
			Return(entities.User{ID: "u1", Usuario: "abilio", NomeCompleto: "Abílio Dias", Tipo: entities.RoleUsuario, SenhaHash: "$2a$..."}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/users",
			bytes.NewBufferString(`{"usuario":"abilio","nome_completo":"Abílio Dias","senha":"segredo","tipo":"usuario"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if _, leaked := body["senha_hash"]; leaked {
			t.Fatalf("response must not carry the password hash: %s", w.Body.String())
		}
		if body["usuario"] != "abilio" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUserUseCase(ctrl)
	h := NewUserHandler(uc)

	r := gin.New()
	r.GET("/v1/users/:id", h.GetUser)

	uc.EXPECT().GetByID(gomock.Any(), "u-missing").Return(entities.User{}, usecase.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/u-missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
