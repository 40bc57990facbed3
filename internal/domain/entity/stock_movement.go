package entity

import "time"

// Tipos de movimento de estoque.
const (
	MovementTypeIn  = "in"  // entrada (compra, devolução)
	MovementTypeOut = "out" // saída (venda, perda)
)

// StockMovement representa um lançamento no ledger de estoque (append-only).
// O saldo do produto é aplicado em Product.Stock no momento da gravação;
// o ledger serve de trilha de auditoria, não de fonte de recomputação.
type StockMovement struct {
	ID         string
	BusinessID string
	ProductID  string
	Type       string // in, out
	Quantity   int    // sempre positivo; o sinal vem do Type
	Reason     string // texto livre: "sale - pix", "compra NF 1234", etc.
	OperatorID string // User que registrou
	CreatedAt  time.Time
}
