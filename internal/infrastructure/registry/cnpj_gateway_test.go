package registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"
)

func TestCNPJWSGateway_Lookup(t *testing.T) {
	t.Run("maps registry payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/cnpj/12345678000190" {
				t.Fatalf("unexpected path %q", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"razao_social":"ACME LTDA","cnpj":"12345678000190","email":"contato@acme.com.br","ddd_telefone_1":"1133334444"}`))
		}))
		defer srv.Close()

		g := NewCNPJWSGatewayWithBaseURL(srv.URL)
		info, err := g.Lookup(context.Background(), "12345678000190")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := interfaces.CompanyInfo{
			RazaoSocial: "ACME LTDA",
			CNPJ:        "12345678000190",
			Email:       "contato@acme.com.br",
			Telefone:    "1133334444",
		}
		if info != want {
			t.Fatalf("unexpected info: %+v", info)
		}
	})

	t.Run("404 means company not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		g := NewCNPJWSGatewayWithBaseURL(srv.URL)
		_, err := g.Lookup(context.Background(), "12345678000190")
		if !errors.Is(err, interfaces.ErrCompanyNotFound) {
			t.Fatalf("expected ErrCompanyNotFound, got %v", err)
		}
	})

	t.Run("other failures are registry errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		g := NewCNPJWSGatewayWithBaseURL(srv.URL)
		_, err := g.Lookup(context.Background(), "12345678000190")
		if !errors.Is(err, ErrRegistryUnavailable) {
			t.Fatalf("expected ErrRegistryUnavailable, got %v", err)
		}
	})
}
