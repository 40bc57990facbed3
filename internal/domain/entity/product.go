package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto vendável no PDV.
// Stock é o saldo corrente, atualizado no momento da gravação de cada
// StockMovement (não é recalculado a partir do ledger). Invariante: Stock >= 0
// após qualquer movimento confirmado.
type Product struct {
	ID         string
	BusinessID string
	Name       string
	Barcode    string          // opcional; usado pelo leitor de código de barras
	Price      decimal.Decimal // preço de venda
	Cost       decimal.Decimal // custo de aquisição
	Stock      int
	MinStock   int // alerta de reposição quando Stock <= MinStock
	Category   string
	Unit       string // "un", "kg", "cx", etc.
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LowStock informa se o produto está no ponto de reposição.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
