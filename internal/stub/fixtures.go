package stub

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/blumenladen/dashboard/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadFixtures lê um arquivo JSON com uma lista de compras
func LoadFixtures(path string) ([]domain.Purchase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "stub: read fixtures")
	}

	var purchases []domain.Purchase
	if err := json.Unmarshal(data, &purchases); err != nil {
		return nil, errors.Wrapf(err, "stub: decode fixtures %s", path)
	}

	return purchases, nil
}

// DefaultPurchases é o catálogo usado quando nenhum arquivo é configurado
func DefaultPurchases() []domain.Purchase {
	return []domain.Purchase{
		{Date: "2024-01-09", ProductID: "rose/red", NBunches: 4, BunchSize: 10, Price: 55, Percentage: 120},
		{Date: "2024-03-05", ProductID: "rose/red", NBunches: 6, BunchSize: 10, Price: 60, Percentage: 120},
		{Date: "2024-01-09", ProductID: "tulip", NBunches: 10, BunchSize: 10, Price: 25, Percentage: 150},
		{Date: "2024-02-14", ProductID: "tulip", NBunches: 12, BunchSize: 10, Price: 28, Percentage: 150},
		{Date: "2024-02-14", ProductID: "eucalyptus", NBunches: 3, BunchSize: 5, Price: 120, Percentage: 80},
		{Date: "2023-12-18", ProductID: "amaryllis", NBunches: 2, BunchSize: 5, Price: 210, Percentage: 90},
	}
}
