package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentBreakdownResponse receita por forma de pagamento.
type PaymentBreakdownResponse struct {
	PaymentMethod string          `json:"paymentMethod"`
	Count         int             `json:"count"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// TopProductResponse produto mais vendido no período.
type TopProductResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// SalesReportResponse agregados de vendas de um intervalo de datas.
type SalesReportResponse struct {
	StartDate     time.Time                  `json:"startDate"`
	EndDate       time.Time                  `json:"endDate"`
	Count         int                        `json:"count"`
	Revenue       decimal.Decimal            `json:"revenue"`
	AverageTicket decimal.Decimal            `json:"averageTicket"`
	ByPayment     []PaymentBreakdownResponse `json:"byPayment"`
	TopProducts   []TopProductResponse       `json:"topProducts"`
}
