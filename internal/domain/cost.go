package domain

// TotalCost é o custo agregado de um grupo no período pedido
type TotalCost struct {
	GroupBy string `json:"group_by"`
	Cost    int    `json:"cost"`
}

type TotalCosts []TotalCost

// Sum soma os custos de todos os grupos
func (c TotalCosts) Sum() int {
	var total int
	for _, bucket := range c {
		total += bucket.Cost
	}
	return total
}
