package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/handlers/mocks"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"
)

func TestCNPJHandler_LookupCNPJ(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICNPJUseCase(ctrl)
		h := NewCNPJHandler(uc)

		r := gin.New()
		r.GET("/v1/cnpj/:cnpj", h.LookupCNPJ)

		uc.EXPECT().
			Lookup(gomock.Any(), "12345678000190").
			Return(interfaces.CompanyInfo{RazaoSocial: "ACME LTDA", CNPJ: "12345678000190", Email: "contato@acme.com.br"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/cnpj/12345678000190", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["company"] != "ACME LTDA" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid cnpj", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICNPJUseCase(ctrl)
		h := NewCNPJHandler(uc)

		r := gin.New()
		r.GET("/v1/cnpj/:cnpj", h.LookupCNPJ)

		uc.EXPECT().Lookup(gomock.Any(), "123").Return(interfaces.CompanyInfo{}, usecase.ErrInvalidCNPJ)

		req := httptest.NewRequest(http.MethodGet, "/v1/cnpj/123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICNPJUseCase(ctrl)
		h := NewCNPJHandler(uc)

		r := gin.New()
		r.GET("/v1/cnpj/:cnpj", h.LookupCNPJ)

		uc.EXPECT().Lookup(gomock.Any(), "00000000000000").Return(interfaces.CompanyInfo{}, interfaces.ErrCompanyNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/cnpj/00000000000000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("registry down maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICNPJUseCase(ctrl)
		h := NewCNPJHandler(uc)

		r := gin.New()
		r.GET("/v1/cnpj/:cnpj", h.LookupCNPJ)

		uc.EXPECT().Lookup(gomock.Any(), "12345678000190").Return(interfaces.CompanyInfo{}, errors.New("timeout"))

		req := httptest.NewRequest(http.MethodGet, "/v1/cnpj/12345678000190", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
