package blumenladenclient

import (
	"context"
	"net/http"

	"github.com/blumenladen/dashboard/internal/domain"
)

// GetCosts consulta os custos agrupados. from e to vazios não entram na query.
func (c *BlumenladenClient) GetCosts(ctx context.Context, groupBy, from, to string) ([]domain.TotalCost, error) {
	endpoint, err := c.endpoint("/costs", groupBy)
	if err != nil {
		return nil, &RequestError{Op: "GetCosts", Method: http.MethodGet, URL: c.config.Client.BaseURL, Kind: KindTransport, Err: err}
	}

	query := endpoint.Query()
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}
	endpoint.RawQuery = query.Encode()

	var response []domain.TotalCost
	if err := c.do(ctx, "GetCosts", http.MethodGet, endpoint, &response); err != nil {
		return nil, err
	}

	return response, nil
}
