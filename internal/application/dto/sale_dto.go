package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest linha de uma venda a finalizar. UnitPrice é o snapshot de
// preço exibido no caixa no momento da leitura.
type SaleItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateSaleRequest finalização de venda: lista não vazia de itens + forma de
// pagamento.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"paymentMethod"` // cash, pix, credit, debit
	Discount      decimal.Decimal   `json:"discount"`
}

// SaleItemResponse linha persistida.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// SaleResponse venda persistida com seus itens.
type SaleResponse struct {
	ID            string             `json:"id"`
	BusinessID    string             `json:"businessId"`
	OperatorID    string             `json:"operatorId"`
	Total         decimal.Decimal    `json:"total"`
	Discount      decimal.Decimal    `json:"discount"`
	PaymentMethod string             `json:"paymentMethod"`
	Status        string             `json:"status"`
	Items         []SaleItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// SaleListResponse listagem paginada de vendas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
