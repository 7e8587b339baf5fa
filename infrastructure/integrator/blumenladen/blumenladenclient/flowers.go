package blumenladenclient

import (
	"context"
	"net/http"

	"github.com/blumenladen/dashboard/internal/domain"
)

// ListFlowers devolve todas as flores com a compra mais recente de cada uma
func (c *BlumenladenClient) ListFlowers(ctx context.Context) ([]domain.Flower, error) {
	endpoint, err := c.endpoint("/flowers")
	if err != nil {
		return nil, &RequestError{Op: "ListFlowers", Method: http.MethodGet, URL: c.config.Client.BaseURL, Kind: KindTransport, Err: err}
	}

	var response []domain.Flower
	if err := c.do(ctx, "ListFlowers", http.MethodGet, endpoint, &response); err != nil {
		return nil, err
	}

	return response, nil
}

// GetFlower busca uma flor com todo o histórico de compras
func (c *BlumenladenClient) GetFlower(ctx context.Context, productID string) (*domain.Flower, error) {
	endpoint, err := c.endpoint("/flowers", productID)
	if err != nil {
		return nil, &RequestError{Op: "GetFlower", Method: http.MethodGet, URL: c.config.Client.BaseURL, Kind: KindTransport, Err: err}
	}

	var response *domain.Flower
	if err := c.do(ctx, "GetFlower", http.MethodGet, endpoint, &response); err != nil {
		return nil, err
	}
	if response == nil {
		return nil, emptyBody("GetFlower", http.MethodGet, endpoint)
	}

	return response, nil
}
