package blumenladenclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/blumenladen/dashboard/internal/config"
	"github.com/blumenladen/dashboard/internal/domain"
	"github.com/blumenladen/dashboard/pkg/log"
	"github.com/blumenladen/dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RequestIDHeader correlaciona os logs do cliente com os do serviço
const RequestIDHeader = "X-Request-ID"

type Client interface {
	UpdateFlowers(ctx context.Context) (*domain.DateResponse, error)
	GetLastUpdated(ctx context.Context) (*domain.DateResponse, error)
	ListFlowers(ctx context.Context) ([]domain.Flower, error)
	GetFlower(ctx context.Context, productID string) (*domain.Flower, error)
	GetCosts(ctx context.Context, groupBy, from, to string) ([]domain.TotalCost, error)
}

type BlumenladenClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria o cliente com a configuração explícita; nada é lido de variáveis globais.
func NewClient(cfg *config.Config) Client {
	transport := http.DefaultTransport
	if cfg.Client.TracingEnabled {
		transport = otelhttp.NewTransport(transport,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return "blumenladen " + r.Method + " " + r.URL.Path
			}),
		)
	}

	return &BlumenladenClient{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Client.Timeout,
		},
		config: cfg,
	}
}

// endpoint junta a URL base com os segmentos. Segmentos variáveis são escapados
// quando EncodePathSegments está ligado e enviados crus caso contrário.
func (c *BlumenladenClient) endpoint(static string, segments ...string) (*url.URL, error) {
	raw := strings.TrimRight(c.config.Client.BaseURL, "/") + static
	for _, segment := range segments {
		if c.config.Client.EncodePathSegments {
			segment = url.PathEscape(segment)
		}
		raw += "/" + segment
	}

	endpoint, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, "parse endpoint")
	}
	return endpoint, nil
}

// do executa exatamente uma requisição e decodifica o corpo em out
func (c *BlumenladenClient) do(ctx context.Context, op, method string, endpoint *url.URL, out interface{}) error {
	requestID, err := utils.GenerateRequestID()
	if err != nil {
		return &RequestError{Op: op, Method: method, URL: endpoint.String(), Kind: KindTransport, Err: errors.Wrap(err, "generate request id")}
	}
	ctx = log.WithRequestID(ctx, requestID)
	logger := log.ForContext(ctx).WithFields(log.Fields{"op": op, "method": method, "request_url": endpoint.String()})

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), nil)
	if err != nil {
		return &RequestError{Op: op, Method: method, URL: endpoint.String(), Kind: KindTransport, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	logger.Debug("blumenladen: sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Op: op, Method: method, URL: endpoint.String(), Kind: KindTransport, Err: errors.Wrap(err, "execute request")}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &RequestError{
			Op:         op,
			Method:     method,
			URL:        endpoint.String(),
			StatusCode: resp.StatusCode,
			Kind:       KindStatus,
			Err:        errors.Errorf("unexpected status %s", resp.Status),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{
			Op:         op,
			Method:     method,
			URL:        endpoint.String(),
			StatusCode: resp.StatusCode,
			Kind:       KindDecode,
			Err:        errors.Wrap(err, "decode response"),
		}
	}

	logger.WithField("status_code", resp.StatusCode).Debug("blumenladen: request completed")

	return nil
}
