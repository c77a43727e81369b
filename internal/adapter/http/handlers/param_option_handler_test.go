package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/handlers/mocks"
	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
)

func TestParamOptionHandler_CreateParamOption(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records creator from context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParamOptionUseCase(ctrl)
		h := NewParamOptionHandler(uc)

		r := gin.New()
		r.POST("/v1/params", authAs("adm-1", entities.RoleAdmin), h.CreateParamOption)

		uc.EXPECT().
			Create(gomock.Any(), entities.ParamFrete, "CIF", "adm-1").
			Return(entities.ParamOption{ID: "opt-1", Category: entities.ParamFrete, Label: "CIF", CreatedByID: "adm-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/params",
			bytes.NewBufferString(`{"category":"frete","label":"CIF"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParamOptionUseCase(ctrl)
		h := NewParamOptionHandler(uc)

		r := gin.New()
		r.POST("/v1/params", authAs("adm-1", entities.RoleAdmin), h.CreateParamOption)

		uc.EXPECT().
			Create(gomock.Any(), entities.ParamFrete, "CIF", "adm-1").
			Return(entities.ParamOption{}, usecase.ErrParamOptionExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/params",
			bytes.NewBufferString(`{"category":"frete","label":"CIF"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestParamOptionHandler_ListParamOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIParamOptionUseCase(ctrl)
	h := NewParamOptionHandler(uc)

	r := gin.New()
	r.GET("/v1/params", h.ListParamOptions)

	uc.EXPECT().
		ListByCategory(gomock.Any(), entities.ParamPagtoEquip).
		Return([]entities.ParamOption{{ID: "opt-1", Label: "30/60/90"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/params?category=pagto_equip", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
