package entity

import "github.com/shopspring/decimal"

// SaleItem representa uma linha de uma venda. Imutável depois de criada.
// ProductName e UnitPrice são snapshots do momento da venda: alterações
// posteriores no cadastro do produto não afetam vendas já registradas.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal // Quantity × UnitPrice
}
