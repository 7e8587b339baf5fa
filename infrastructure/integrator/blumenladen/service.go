package blumenladen

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/blumenladen/dashboard/infrastructure/integrator/blumenladen/blumenladenclient"
	"github.com/blumenladen/dashboard/internal/config"
	"github.com/blumenladen/dashboard/internal/domain"
	"github.com/blumenladen/dashboard/pkg/log"
)

// Integrator é a API usada pelas telas: nenhuma operação devolve erro,
// falhas viram o valor sentinela de cada operação.
type Integrator interface {
	UpdateFlowers(ctx context.Context) *domain.DateResponse
	GetLastUpdated(ctx context.Context) *domain.DateResponse
	ListFlowers(ctx context.Context) []domain.Flower
	GetFlower(ctx context.Context, productID string) *domain.Flower
	GetCosts(ctx context.Context, groupBy, from, to string) []domain.TotalCost
	Inventory(ctx context.Context) []InventoryRow
	CostReport(ctx context.Context, groupBy, from, to string) CostReport
}

var _ Integrator = (*Service)(nil)

type Service struct {
	cfg    *config.Config
	client blumenladenclient.Client
}

func New(cfg *config.Config, client blumenladenclient.Client) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// Client expõe o cliente com erros tipados
func (s *Service) Client() blumenladenclient.Client {
	return s.client
}

func (s *Service) UpdateFlowers(ctx context.Context) *domain.DateResponse {
	resp, err := s.client.UpdateFlowers(ctx)
	if err != nil {
		s.logFailure(ctx, err)
		return s.failedDate()
	}
	return resp
}

func (s *Service) GetLastUpdated(ctx context.Context) *domain.DateResponse {
	resp, err := s.client.GetLastUpdated(ctx)
	if err != nil {
		s.logFailure(ctx, err)
		return s.failedDate()
	}
	return resp
}

func (s *Service) ListFlowers(ctx context.Context) []domain.Flower {
	flowers, err := s.client.ListFlowers(ctx)
	if err != nil {
		s.logFailure(ctx, err)
		return []domain.Flower{}
	}
	if flowers == nil {
		return []domain.Flower{}
	}
	return flowers
}

func (s *Service) GetFlower(ctx context.Context, productID string) *domain.Flower {
	flower, err := s.client.GetFlower(ctx, productID)
	if err != nil {
		s.logFailure(ctx, err)
		return nil
	}
	return flower
}

func (s *Service) GetCosts(ctx context.Context, groupBy, from, to string) []domain.TotalCost {
	costs, err := s.client.GetCosts(ctx, groupBy, from, to)
	if err != nil {
		s.logFailure(ctx, err)
		return []domain.TotalCost{}
	}
	if costs == nil {
		return []domain.TotalCost{}
	}
	return costs
}

// failedDate aplica a política de falha configurada
func (s *Service) failedDate() *domain.DateResponse {
	if s.cfg.Client.FailurePolicy == config.FailureFlagged {
		return &domain.DateResponse{Success: false}
	}
	return nil
}

func (s *Service) logFailure(ctx context.Context, err error) {
	logger := log.ForContext(ctx).WithError(err)

	var reqErr *blumenladenclient.RequestError
	if errors.As(err, &reqErr) {
		logger = logger.WithFields(log.Fields{
			"op":          reqErr.Op,
			"kind":        reqErr.Kind.String(),
			"status_code": reqErr.StatusCode,
			"request_url": reqErr.URL,
		})
	}

	logger.Error("blumenladen: request failed")
}

// InventoryRow é a compra mais recente de uma flor, pronta para exibição
type InventoryRow struct {
	ProductID  string
	Date       string
	NBunches   int
	BunchSize  int
	Price      int
	Percentage float64
	SalePrice  int
	Cost       int
}

// Inventory monta uma linha por flor, ordenada pelo id. Flores sem compras ficam de fora.
func (s *Service) Inventory(ctx context.Context) []InventoryRow {
	flowers := s.ListFlowers(ctx)

	rows := make([]InventoryRow, 0, len(flowers))
	for _, flower := range flowers {
		latest, ok := flower.LatestPurchase()
		if !ok {
			continue
		}

		rows = append(rows, InventoryRow{
			ProductID:  flower.ProductID,
			Date:       latest.Date,
			NBunches:   latest.NBunches,
			BunchSize:  latest.BunchSize,
			Price:      latest.Price,
			Percentage: latest.Percentage,
			SalePrice:  latest.SalePrice(),
			Cost:       latest.Cost(),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ProductID < rows[j].ProductID
	})

	return rows
}

// CostReport agrupa os custos do período com o total em centavos
type CostReport struct {
	GroupBy string
	From    string
	To      string
	Buckets domain.TotalCosts
	Total   int
}

func (s *Service) CostReport(ctx context.Context, groupBy, from, to string) CostReport {
	buckets := domain.TotalCosts(s.GetCosts(ctx, groupBy, from, to))

	return CostReport{
		GroupBy: groupBy,
		From:    from,
		To:      to,
		Buckets: buckets,
		Total:   buckets.Sum(),
	}
}
