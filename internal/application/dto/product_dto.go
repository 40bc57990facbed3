package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest dados de cadastro; Name e Price são obrigatórios.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Barcode  string          `json:"barcode"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"minStock"`
	Category string          `json:"category"`
	Unit     string          `json:"unit"`
}

// UpdateProductRequest campos opcionais; Stock não é atualizável por aqui
// (somente via movimentos de estoque).
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Barcode  *string          `json:"barcode"`
	Price    *decimal.Decimal `json:"price"`
	Cost     *decimal.Decimal `json:"cost"`
	MinStock *int             `json:"minStock"`
	Category *string          `json:"category"`
	Unit     *string          `json:"unit"`
	Active   *bool            `json:"active"`
}

// ProductResponse representação HTTP de um produto.
type ProductResponse struct {
	ID         string          `json:"id"`
	BusinessID string          `json:"businessId"`
	Name       string          `json:"name"`
	Barcode    string          `json:"barcode,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"minStock"`
	Category   string          `json:"category,omitempty"`
	Unit       string          `json:"unit,omitempty"`
	Active     bool            `json:"active"`
	LowStock   bool            `json:"lowStock"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ProductListResponse listagem paginada.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
