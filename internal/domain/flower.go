// Package domain contém as estruturas de dados do serviço Blumenladen
package domain

import "github.com/shopspring/decimal"

// Purchase é uma linha de fatura de um fornecedor. Valores monetários em centavos.
type Purchase struct {
	Date       string  `json:"date"`
	ProductID  string  `json:"product_id"`
	NBunches   int     `json:"n_bunches"`
	BunchSize  int     `json:"bunch_size"`
	Price      int     `json:"price"`
	Percentage float64 `json:"percentage"`
}

// Cost é o total da linha: maços x hastes por maço x preço unitário
func (p Purchase) Cost() int {
	return p.NBunches * p.BunchSize * p.Price
}

// SalePrice aplica a margem percentual ao preço unitário, arredondando para o centavo
func (p Purchase) SalePrice() int {
	price := decimal.NewFromInt(int64(p.Price))
	markup := decimal.NewFromFloat(p.Percentage).Div(decimal.NewFromInt(100))

	return int(price.Add(price.Mul(markup)).Round(0).IntPart())
}

// Flower é um produto com seu histórico de compras, na ordem entregue pelo serviço
type Flower struct {
	ProductID string     `json:"product_id"`
	Purchases []Purchase `json:"purchases"`
}

// LatestPurchase devolve a última compra da lista
func (f Flower) LatestPurchase() (Purchase, bool) {
	if len(f.Purchases) == 0 {
		return Purchase{}, false
	}
	return f.Purchases[len(f.Purchases)-1], true
}
