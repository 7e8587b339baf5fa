package blumenladenclient

import (
	"context"
	"net/http"

	"github.com/blumenladen/dashboard/internal/domain"
)

// UpdateFlowers pede ao serviço que releia as faturas. O caminho depende da
// variante configurada (/version ou /update_flowers).
func (c *BlumenladenClient) UpdateFlowers(ctx context.Context) (*domain.DateResponse, error) {
	return c.date(ctx, "UpdateFlowers", http.MethodPost, c.config.Client.UpdatePath)
}

// GetLastUpdated consulta a data da última atualização
func (c *BlumenladenClient) GetLastUpdated(ctx context.Context) (*domain.DateResponse, error) {
	return c.date(ctx, "GetLastUpdated", http.MethodGet, "/version")
}

func (c *BlumenladenClient) date(ctx context.Context, op, method, path string) (*domain.DateResponse, error) {
	endpoint, err := c.endpoint(path)
	if err != nil {
		return nil, &RequestError{Op: op, Method: method, URL: c.config.Client.BaseURL + path, Kind: KindTransport, Err: err}
	}

	var response *domain.DateResponse
	if err := c.do(ctx, op, method, endpoint, &response); err != nil {
		return nil, err
	}
	if response == nil {
		return nil, emptyBody(op, method, endpoint)
	}

	response.Success = true
	return response, nil
}
