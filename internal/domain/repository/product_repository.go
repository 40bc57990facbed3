package repository

import "github.com/caixalivre/pdv-api/internal/domain/entity"

// ProductRepository define a porta de persistência para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(businessID, barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock grava o novo saldo do produto (usado pelo motor de movimentos).
	UpdateStock(productID string, stock int) error
	ListByBusiness(businessID string, lowStockOnly bool, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
