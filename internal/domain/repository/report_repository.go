package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentBreakdown receita agregada por forma de pagamento.
type PaymentBreakdown struct {
	PaymentMethod string
	Count         int
	Revenue       decimal.Decimal
}

// TopProduct produto mais vendido no período (por quantidade).
type TopProduct struct {
	ProductID   string
	ProductName string
	Quantity    int
	Revenue     decimal.Decimal
}

// SalesSummary agregados de vendas de um período.
type SalesSummary struct {
	Count       int
	Revenue     decimal.Decimal
	ByPayment   []PaymentBreakdown
	TopProducts []TopProduct
}

// ReportRepository consultas de agregação somente leitura sobre vendas.
type ReportRepository interface {
	SalesSummary(ctx context.Context, businessID string, start, end time.Time, topN int) (*SalesSummary, error)
}
