package stub

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blumenladen/dashboard/internal/domain"
)

func testPurchases() []domain.Purchase {
	return []domain.Purchase{
		{Date: "2024-03-05", ProductID: "rose", NBunches: 2, BunchSize: 10, Price: 50, Percentage: 100},
		{Date: "2024-01-10", ProductID: "rose", NBunches: 1, BunchSize: 10, Price: 40, Percentage: 100},
		{Date: "2024-01-20", ProductID: "tulip", NBunches: 5, BunchSize: 10, Price: 20, Percentage: 50},
		{Date: "2023-12-31", ProductID: "lily", NBunches: 1, BunchSize: 5, Price: 100, Percentage: 80},
	}
}

func TestCatalog_Flowers(t *testing.T) {
	catalog := NewCatalog(testPurchases())

	flowers := catalog.Flowers()

	require.Len(t, flowers, 3)
	assert.Equal(t, []string{"lily", "rose", "tulip"}, []string{flowers[0].ProductID, flowers[1].ProductID, flowers[2].ProductID})
	require.Len(t, flowers[1].Purchases, 1)
	assert.Equal(t, "2024-03-05", flowers[1].Purchases[0].Date)
}

func TestCatalog_Flower(t *testing.T) {
	catalog := NewCatalog(testPurchases())

	flower, err := catalog.Flower("rose")
	require.NoError(t, err)
	require.Len(t, flower.Purchases, 2)
	assert.Equal(t, "2024-01-10", flower.Purchases[0].Date)
	assert.Equal(t, "2024-03-05", flower.Purchases[1].Date)

	_, err = catalog.Flower("orchid")
	assert.True(t, errors.Is(err, ErrFlowerNotFound))
}

func TestCatalog_TotalCosts(t *testing.T) {
	catalog := NewCatalog(testPurchases())

	tests := []struct {
		name     string
		groupBy  string
		from     string
		to       string
		expected domain.TotalCosts
	}{
		{
			name:    "por produto sem período",
			groupBy: GroupProductID,
			expected: domain.TotalCosts{
				{GroupBy: "lily", Cost: 500},
				{GroupBy: "rose", Cost: 1400},
				{GroupBy: "tulip", Cost: 1000},
			},
		},
		{
			name:    "alias product com período inclusivo",
			groupBy: GroupProduct,
			from:    "2024-01-10",
			to:      "2024-01-20",
			expected: domain.TotalCosts{
				{GroupBy: "rose", Cost: 400},
				{GroupBy: "tulip", Cost: 1000},
			},
		},
		{
			name:    "por mês",
			groupBy: GroupMonth,
			expected: domain.TotalCosts{
				{GroupBy: "2023-12", Cost: 500},
				{GroupBy: "2024-01", Cost: 1400},
				{GroupBy: "2024-03", Cost: 1000},
			},
		},
		{
			name:    "por ano a partir de 2024",
			groupBy: GroupYear,
			from:    "2024-01-01",
			expected: domain.TotalCosts{
				{GroupBy: "2024", Cost: 2400},
			},
		},
		{
			name:    "por dia até o fim de janeiro",
			groupBy: GroupDate,
			to:      "2024-01-31",
			expected: domain.TotalCosts{
				{GroupBy: "2023-12-31", Cost: 500},
				{GroupBy: "2024-01-10", Cost: 400},
				{GroupBy: "2024-01-20", Cost: 1000},
			},
		},
		{
			name:     "período sem compras",
			groupBy:  GroupProductID,
			from:     "2025-01-01",
			to:       "2025-12-31",
			expected: domain.TotalCosts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			costs, err := catalog.TotalCosts(tt.groupBy, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, costs)
		})
	}
}

func TestCatalog_TotalCostsErrors(t *testing.T) {
	catalog := NewCatalog(testPurchases())

	_, err := catalog.TotalCosts("vendor", "", "")
	assert.True(t, errors.Is(err, ErrUnknownGroup))

	_, err = catalog.TotalCosts(GroupMonth, "01.01.2024", "")
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestCatalog_Refresh(t *testing.T) {
	catalog := NewCatalog(nil)

	_, err := catalog.LastUpdated()
	assert.True(t, errors.Is(err, ErrNeverUpdated))

	catalog.Enqueue(domain.Purchase{Date: "2024-04-01", ProductID: "peony", NBunches: 1, BunchSize: 5, Price: 300})
	assert.Empty(t, catalog.Flowers())

	date, err := catalog.Refresh(time.Date(2024, 4, 2, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-04-02", date)

	last, err := catalog.LastUpdated()
	require.NoError(t, err)
	assert.Equal(t, "2024-04-02", last)
	assert.Len(t, catalog.Flowers(), 1)
}

func TestCatalog_RefreshRejectsConcurrentUpdate(t *testing.T) {
	catalog := NewCatalog(nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	catalog.beforeIngest = func() {
		close(entered)
		<-release
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := catalog.Refresh(time.Now())
		assert.NoError(t, err)
	}()

	<-entered
	catalog.mu.Lock()
	catalog.beforeIngest = nil
	catalog.mu.Unlock()

	_, err := catalog.Refresh(time.Now())
	assert.ErrorIs(t, err, ErrAlreadyUpdating)

	close(release)
	wg.Wait()

	_, err = catalog.Refresh(time.Now())
	assert.NoError(t, err)
}

func TestLoadFixtures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "purchases.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"date":"2024-03-05","product_id":"rose/red","n_bunches":2,"bunch_size":10,"price":50,"percentage":100}
	]`), 0o600))

	purchases, err := LoadFixtures(path)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, "rose/red", purchases[0].ProductID)
	assert.Equal(t, 1000, purchases[0].Cost())

	_, err = LoadFixtures(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	_, err = LoadFixtures(path)
	assert.Error(t, err)
}

func TestDefaultPurchases(t *testing.T) {
	catalog := NewCatalog(DefaultPurchases())

	flower, err := catalog.Flower("rose/red")
	require.NoError(t, err)
	assert.Len(t, flower.Purchases, 2)
}
