package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento aceitas no PDV.
const (
	PaymentCash   = "cash"
	PaymentPix    = "pix"
	PaymentCredit = "credit"
	PaymentDebit  = "debit"
)

// Status de uma venda.
const (
	SaleStatusCompleted = "completed"
	SaleStatusCanceled  = "canceled"
)

// ValidPaymentMethod informa se o método pertence à enumeração aceita.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCredit, PaymentDebit:
		return true
	}
	return false
}

// Sale representa o cabeçalho de uma venda finalizada no caixa.
// Criada atomicamente com seus itens; nunca é alterada depois de criada.
type Sale struct {
	ID            string
	BusinessID    string
	OperatorID    string          // User que operava o caixa
	Total         decimal.Decimal // soma dos itens menos desconto
	Discount      decimal.Decimal
	PaymentMethod string // cash, pix, credit, debit
	Status        string // completed, canceled
	CreatedAt     time.Time
}
