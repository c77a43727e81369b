package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"
)

// ErrRegistryUnavailable reports a failure talking to the public registry
// (network error, unexpected status, bad payload).
var ErrRegistryUnavailable = errors.New("erro ao consultar API externa de CNPJ")

const defaultBaseURL = "https://publica.cnpj.ws"

// CNPJWSGateway resolves company data through the open publica.cnpj.ws API.
// No credentials are required; the service rate-limits by IP.
type CNPJWSGateway struct {
	httpClient *http.Client
	baseURL    string
}

var _ interfaces.ICNPJGateway = (*CNPJWSGateway)(nil)

func NewCNPJWSGateway() *CNPJWSGateway {
	return &CNPJWSGateway{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// NewCNPJWSGatewayWithBaseURL exists for tests against a local server.
func NewCNPJWSGatewayWithBaseURL(baseURL string) *CNPJWSGateway {
	g := NewCNPJWSGateway()
	g.baseURL = baseURL
	return g
}

type cnpjResponse struct {
	RazaoSocial string `json:"razao_social"`
	CNPJ        string `json:"cnpj"`
	Email       string `json:"email"`
	Telefone    string `json:"ddd_telefone_1"`
}

func (g *CNPJWSGateway) Lookup(ctx context.Context, cnpj string) (interfaces.CompanyInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/cnpj/%s", g.baseURL, cnpj), nil)
	if err != nil {
		return interfaces.CompanyInfo{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[cnpj][gateway] lookup failed cnpj=%s err=%v", cnpj, err)
		return interfaces.CompanyInfo{}, fmt.Errorf("%w: %v", ErrRegistryUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return interfaces.CompanyInfo{}, interfaces.ErrCompanyNotFound
	case resp.StatusCode != http.StatusOK:
		log.Printf("[cnpj][gateway] unexpected status cnpj=%s status=%d", cnpj, resp.StatusCode)
		return interfaces.CompanyInfo{}, fmt.Errorf("%w: status %d", ErrRegistryUnavailable, resp.StatusCode)
	}

	var payload cnpjResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return interfaces.CompanyInfo{}, fmt.Errorf("%w: %v", ErrRegistryUnavailable, err)
	}

	return interfaces.CompanyInfo{
		RazaoSocial: payload.RazaoSocial,
		CNPJ:        payload.CNPJ,
		Email:       payload.Email,
		Telefone:    payload.Telefone,
	}, nil
}
