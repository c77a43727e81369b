package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/handlers/mocks"
	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/middleware"
	"github.com/vktkrum1/sistema-de-propostas/internal/docgen"
	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
)

func authAs(id string, role entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserIDKey, id)
		c.Set(middleware.CtxRoleKey, string(role))
		c.Next()
	}
}

const validProposalBody = `{
	"company": "ACME LTDA",
	"client_name": "Maria Souza",
	"email": "maria@acme.com.br",
	"telefone": "+55 11 912345678",
	"servico_type": "Ponto",
	"modalidade_type": "Aquisição",
	"items": [{"equipment_id": "eq-1", "quantity": 2}]
}`

func TestProposalHandler_CreateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", authAs("u1", entities.RoleUsuario), h.CreateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("actor from context reaches usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", authAs("u1", entities.RoleUsuario), h.CreateProposal)

		now := time.Now().UTC()
		uc.EXPECT().
			Create(gomock.Any(), usecase.Actor{ID: "u1", Role: entities.RoleUsuario}, gomock.Any()).
			Return(entities.Proposal{
				ID:       "p1",
				Company:  "ACME LTDA",
				UserID:   "u1",
				Filename: "PROPOSTA COMERCIAL MS01",
				CreatedAt: now,
				UpdatedAt: now,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(validProposalBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["filename"] != "PROPOSTA COMERCIAL MS01" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["code"] != "MS01" {
			t.Fatalf("expected code MS01, got %v", body["code"])
		}
	})

	t.Run("no line items maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", authAs("u1", entities.RoleUsuario), h.CreateProposal)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Proposal{}, usecase.ErrNoLineItems)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(validProposalBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProposalHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query filters reach usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/proposals", authAs("g1", entities.RoleGestor), h.History)

		uc.EXPECT().
			History(gomock.Any(), usecase.Actor{ID: "g1", Role: entities.RoleGestor}, usecase.HistoryQuery{
				Page:        2,
				Date:        "2026-08-30",
				ServicoType: entities.ServicoPonto,
				UserID:      "u9",
			}).
			Return(usecase.HistoryPage{Page: 2, PerPage: 10, Total: 11, TotalPages: 2, Items: []entities.Proposal{{ID: "p11"}}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals?page=2&date=2026-08-30&servico_type=Ponto&user_id=u9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_pages"] != float64(2) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_DownloadDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pdf attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/proposals/:id/document", authAs("u1", entities.RoleUsuario), h.DownloadDocument)

		uc.EXPECT().
			RenderDocument(gomock.Any(), gomock.Any(), "p1", "").
			Return([]byte("%PDF-1.7"), "PROPOSTA COMERCIAL JS07.pdf", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/p1/document", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="PROPOSTA COMERCIAL JS07.pdf"` {
			t.Fatalf("unexpected content disposition %q", cd)
		}
		if w.Body.String() != "%PDF-1.7" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("docx content type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/proposals/:id/document", authAs("u1", entities.RoleUsuario), h.DownloadDocument)

		uc.EXPECT().
			RenderDocument(gomock.Any(), gomock.Any(), "p1", "docx").
			Return([]byte("PK"), "PROPOSTA COMERCIAL JS07.docx", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/p1/document?format=docx", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.wordprocessingml.document" {
			t.Fatalf("unexpected content type %q", ct)
		}
	})

	t.Run("short phone maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/proposals/:id/document", authAs("u1", entities.RoleUsuario), h.DownloadDocument)

		uc.EXPECT().
			RenderDocument(gomock.Any(), gomock.Any(), "p1", "").
			Return(nil, "", docgen.ErrInvalidPhone)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/p1/document", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("converter offline maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/proposals/:id/document", authAs("u1", entities.RoleUsuario), h.DownloadDocument)

		uc.EXPECT().
			RenderDocument(gomock.Any(), gomock.Any(), "p1", "").
			Return(nil, "", docgen.ErrConversionUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/p1/document", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestProposalHandler_SendProposalEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body uses stored values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals/:id/email", authAs("u1", entities.RoleUsuario), h.SendProposalEmail)

		uc.EXPECT().SendEmail(gomock.Any(), gomock.Any(), "p1", "", "").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/p1/email", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("overrides forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals/:id/email", authAs("u1", entities.RoleUsuario), h.SendProposalEmail)

		uc.EXPECT().SendEmail(gomock.Any(), gomock.Any(), "p1", "Segue proposta.", "chefe@acme.com.br").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/p1/email",
			bytes.NewBufferString(`{"corpo":"Segue proposta.","cc":"chefe@acme.com.br"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals/:id/email", authAs("u2", entities.RoleUsuario), h.SendProposalEmail)

		uc.EXPECT().SendEmail(gomock.Any(), gomock.Any(), "p1", "", "").Return(usecase.ErrForbidden)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/p1/email", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestMapProposalError(t *testing.T) {
	if got := mapProposalError(usecase.ErrInvalidProposalData); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProposalError(usecase.ErrForbidden); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapProposalError(usecase.ErrProposalNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProposalError(docgen.ErrInvalidPhone); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProposalError(docgen.ErrConversionUnavailable); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapProposalError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
