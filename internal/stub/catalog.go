// Package stub mantém em memória as compras servidas pelo servidor de desenvolvimento
package stub

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/blumenladen/dashboard/internal/domain"
	"github.com/blumenladen/dashboard/pkg/utils"
)

var (
	ErrAlreadyUpdating = errors.New("already updating")
	ErrNeverUpdated    = errors.New("no data available")
	ErrFlowerNotFound  = errors.New("flower not found")
	ErrUnknownGroup    = errors.New("unknown group")
	ErrInvalidRange    = errors.New("invalid date range")
)

// Agrupamentos aceitos por TotalCosts
const (
	GroupProductID = "product_id"
	GroupProduct   = "product"
	GroupDate      = "date"
	GroupMonth     = "month"
	GroupYear      = "year"
)

type Catalog struct {
	mu          sync.RWMutex
	purchases   []domain.Purchase
	pending     []domain.Purchase
	lastUpdated string
	updating    bool

	// chamado entre a marcação de atualização e a ingestão; usado nos testes
	beforeIngest func()
}

func NewCatalog(purchases []domain.Purchase) *Catalog {
	c := &Catalog{}
	c.purchases = append(c.purchases, purchases...)
	return c
}

// Enqueue guarda compras que só entram no catálogo no próximo Refresh,
// como faturas ainda não lidas da caixa de e-mail.
func (c *Catalog) Enqueue(purchases ...domain.Purchase) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, purchases...)
}

// Refresh ingere as compras pendentes e marca a data de hoje como última atualização
func (c *Catalog) Refresh(now time.Time) (string, error) {
	c.mu.Lock()
	if c.updating {
		c.mu.Unlock()
		return "", ErrAlreadyUpdating
	}
	c.updating = true
	hook := c.beforeIngest
	c.mu.Unlock()

	if hook != nil {
		hook()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.purchases = append(c.purchases, c.pending...)
	c.pending = nil
	c.lastUpdated = now.Format(time.DateOnly)
	c.updating = false

	return c.lastUpdated, nil
}

func (c *Catalog) LastUpdated() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.lastUpdated == "" {
		return "", ErrNeverUpdated
	}
	return c.lastUpdated, nil
}

// Flowers devolve cada produto apenas com a compra mais recente, ordenado pelo id
func (c *Catalog) Flowers() []domain.Flower {
	c.mu.RLock()
	defer c.mu.RUnlock()

	latest := map[string]domain.Purchase{}
	for _, purchase := range c.purchases {
		current, ok := latest[purchase.ProductID]
		if !ok || !purchaseBefore(purchase, current) {
			latest[purchase.ProductID] = purchase
		}
	}

	flowers := make([]domain.Flower, 0, len(latest))
	for productID, purchase := range latest {
		flowers = append(flowers, domain.Flower{
			ProductID: productID,
			Purchases: []domain.Purchase{purchase},
		})
	}

	sort.Slice(flowers, func(i, j int) bool {
		return flowers[i].ProductID < flowers[j].ProductID
	})

	return flowers
}

// Flower devolve todas as compras do produto em ordem cronológica
func (c *Catalog) Flower(productID string) (domain.Flower, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	purchases := []domain.Purchase{}
	for _, purchase := range c.purchases {
		if purchase.ProductID == productID {
			purchases = append(purchases, purchase)
		}
	}

	if len(purchases) == 0 {
		return domain.Flower{}, errors.Wrapf(ErrFlowerNotFound, "product %q", productID)
	}

	sort.SliceStable(purchases, func(i, j int) bool {
		return purchaseBefore(purchases[i], purchases[j])
	})

	return domain.Flower{ProductID: productID, Purchases: purchases}, nil
}

// TotalCosts soma Purchase.Cost por grupo. from e to são datas inclusivas no formato
// 2006-01-02; vazias não limitam o período.
func (c *Catalog) TotalCosts(groupBy, from, to string) (domain.TotalCosts, error) {
	label, err := groupLabel(groupBy)
	if err != nil {
		return nil, err
	}

	fromDate, err := parseBound(from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseBound(to)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	byProduct := groupBy == GroupProductID || groupBy == GroupProduct

	totals := map[string]int{}
	for _, purchase := range c.purchases {
		date, dateErr := utils.ParseTimestamp(purchase.Date)
		if dateErr != nil && (!byProduct || from != "" || to != "") {
			continue
		}

		day := date.Format(time.DateOnly)
		if from != "" && day < fromDate {
			continue
		}
		if to != "" && day > toDate {
			continue
		}

		totals[label(purchase, date)] += purchase.Cost()
	}

	costs := make(domain.TotalCosts, 0, len(totals))
	for group, cost := range totals {
		costs = append(costs, domain.TotalCost{GroupBy: group, Cost: cost})
	}

	sort.Slice(costs, func(i, j int) bool {
		return costs[i].GroupBy < costs[j].GroupBy
	})

	return costs, nil
}

func groupLabel(groupBy string) (func(domain.Purchase, time.Time) string, error) {
	switch groupBy {
	case GroupProductID, GroupProduct:
		return func(p domain.Purchase, _ time.Time) string { return p.ProductID }, nil
	case GroupDate:
		return func(_ domain.Purchase, t time.Time) string { return t.Format(time.DateOnly) }, nil
	case GroupMonth:
		return func(_ domain.Purchase, t time.Time) string { return t.Format("2006-01") }, nil
	case GroupYear:
		return func(_ domain.Purchase, t time.Time) string { return t.Format("2006") }, nil
	default:
		return nil, errors.Wrapf(ErrUnknownGroup, "group %q", groupBy)
	}
}

func parseBound(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	t, err := utils.ParseDate(value)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidRange, "date %q", value)
	}
	return t.Format(time.DateOnly), nil
}

// purchaseBefore compara pela data interpretada; datas inválidas ficam no início
func purchaseBefore(a, b domain.Purchase) bool {
	ta, errA := utils.ParseTimestamp(a.Date)
	tb, errB := utils.ParseTimestamp(b.Date)
	switch {
	case errA != nil && errB != nil:
		return a.Date < b.Date
	case errA != nil:
		return true
	case errB != nil:
		return false
	}
	return ta.Before(tb)
}
