package blumenladenclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blumenladen/dashboard/internal/config"
	"github.com/blumenladen/dashboard/internal/domain"
)

func newTestClient(baseURL string, mutate func(cfg *config.Config)) Client {
	cfg := &config.Config{
		Client: config.Client{
			BaseURL:            baseURL,
			EncodePathSegments: true,
			UpdatePath:         "/version",
			FailurePolicy:      config.FailureNull,
		},
	}
	if mutate != nil {
		mutate(cfg)
	}
	return NewClient(cfg)
}

func TestUpdateFlowers(t *testing.T) {
	tests := []struct {
		name       string
		updatePath string
	}{
		{name: "version endpoint", updatePath: "/version"},
		{name: "update_flowers endpoint", updatePath: "/update_flowers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.updatePath, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				assert.NotEmpty(t, r.Header.Get(RequestIDHeader))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"date":"2024-03-05"}`))
			}))
			defer server.Close()

			client := newTestClient(server.URL, func(cfg *config.Config) {
				cfg.Client.UpdatePath = tt.updatePath
			})

			resp, err := client.UpdateFlowers(context.Background())
			require.NoError(t, err)
			assert.Equal(t, &domain.DateResponse{Date: "2024-03-05", Success: true}, resp)
		})
	}
}

func TestGetLastUpdated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/version", r.URL.Path)
		_, _ = w.Write([]byte(`{"date":"2024-02-29","ignored":true}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL, nil).GetLastUpdated(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", resp.Date)
	assert.True(t, resp.Success)
}

func TestListFlowers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flowers", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"product_id":"rose","purchases":[{"date":"2024-03-01","product_id":"rose","n_bunches":3,"bunch_size":10,"price":45,"percentage":100}]},
			{"product_id":"tulip","purchases":[]}
		]`))
	}))
	defer server.Close()

	flowers, err := newTestClient(server.URL, nil).ListFlowers(context.Background())
	require.NoError(t, err)
	require.Len(t, flowers, 2)
	assert.Equal(t, "rose", flowers[0].ProductID)
	assert.Equal(t, domain.Purchase{Date: "2024-03-01", ProductID: "rose", NBunches: 3, BunchSize: 10, Price: 45, Percentage: 100}, flowers[0].Purchases[0])
	assert.Empty(t, flowers[1].Purchases)
}

func TestGetFlowerPathEncoding(t *testing.T) {
	tests := []struct {
		name        string
		encode      bool
		productID   string
		escapedPath string
		path        string
	}{
		{name: "plain id", encode: true, productID: "rose", escapedPath: "/flowers/rose", path: "/flowers/rose"},
		{name: "encoded slash", encode: true, productID: "rose/red", escapedPath: "/flowers/rose%2Fred", path: "/flowers/rose/red"},
		{name: "encoded space", encode: true, productID: "white rose", escapedPath: "/flowers/white%20rose", path: "/flowers/white rose"},
		{name: "raw slash", encode: false, productID: "rose/red", escapedPath: "/flowers/rose/red", path: "/flowers/rose/red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.escapedPath, r.URL.EscapedPath())
				assert.Equal(t, tt.path, r.URL.Path)
				_, _ = w.Write([]byte(`{"product_id":"` + tt.productID + `","purchases":[]}`))
			}))
			defer server.Close()

			client := newTestClient(server.URL, func(cfg *config.Config) {
				cfg.Client.EncodePathSegments = tt.encode
			})

			flower, err := client.GetFlower(context.Background(), tt.productID)
			require.NoError(t, err)
			assert.Equal(t, tt.productID, flower.ProductID)
		})
	}
}

func TestGetCosts(t *testing.T) {
	body := `[{"group_by":"rose","cost":1200},{"group_by":"tulip","cost":350}]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/costs/product", r.URL.Path)
		assert.Equal(t, "from=2024-01-01&to=2024-01-31", r.URL.RawQuery)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	costs, err := newTestClient(server.URL, nil).GetCosts(context.Background(), "product", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, []domain.TotalCost{{GroupBy: "rose", Cost: 1200}, {GroupBy: "tulip", Cost: 350}}, costs)
}

func TestGetCostsOmitsEmptyRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/costs/month", r.URL.Path)
		assert.Equal(t, "from=2024-01-01", r.URL.RawQuery)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	costs, err := newTestClient(server.URL, nil).GetCosts(context.Background(), "month", "2024-01-01", "")
	require.NoError(t, err)
	assert.Empty(t, costs)
}

func TestBaseURLWithPathPrefix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/flowers", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL+"/api/", nil).ListFlowers(context.Background())
	require.NoError(t, err)
}

func TestRequestErrors(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		kind       Kind
		statusCode int
	}{
		{
			name: "internal server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			kind:       KindStatus,
			statusCode: http.StatusInternalServerError,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			kind:       KindStatus,
			statusCode: http.StatusNotFound,
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>oops</html>`))
			},
			kind:       KindDecode,
			statusCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := newTestClient(server.URL, nil)

			flower, err := client.GetFlower(context.Background(), "rose")
			assert.Nil(t, flower)

			var reqErr *RequestError
			require.True(t, errors.As(err, &reqErr))
			assert.Equal(t, tt.kind, reqErr.Kind)
			assert.Equal(t, tt.statusCode, reqErr.StatusCode)
			assert.Equal(t, "GetFlower", reqErr.Op)
			assert.Equal(t, http.MethodGet, reqErr.Method)

			flowers, err := client.ListFlowers(context.Background())
			assert.Nil(t, flowers)
			kind, ok := KindOf(err)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestNullBodyIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`null`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	ctx := context.Background()

	flower, err := client.GetFlower(ctx, "rose")
	assert.Nil(t, flower)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyBody))
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindDecode, kind)

	updated, err := client.UpdateFlowers(ctx)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, ErrEmptyBody))

	last, err := client.GetLastUpdated(ctx)
	assert.Nil(t, last)
	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "GetLastUpdated", reqErr.Op)
	assert.Equal(t, KindDecode, reqErr.Kind)

	// listas aceitam null
	flowers, err := client.ListFlowers(ctx)
	require.NoError(t, err)
	assert.Nil(t, flowers)
}

func TestNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	_, err := newTestClient(baseURL, nil).GetLastUpdated(context.Background())
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindTransport, kind)
	assert.NotNil(t, errors.Cause(err))
}

func TestCancelledContextIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL, nil).ListFlowers(ctx)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindTransport, kind)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := newTestClient(server.URL, func(cfg *config.Config) {
		cfg.Client.Timeout = 50 * time.Millisecond
	})

	_, err := client.ListFlowers(context.Background())
	kind, _ := KindOf(err)
	assert.Equal(t, KindTransport, kind)
}

func TestTracingTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"date":"2024-03-05"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, func(cfg *config.Config) {
		cfg.Client.TracingEnabled = true
	})

	resp, err := client.GetLastUpdated(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", resp.Date)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "transport", KindTransport.String())
	assert.Equal(t, "status", KindStatus.String())
	assert.Equal(t, "decode", KindDecode.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
