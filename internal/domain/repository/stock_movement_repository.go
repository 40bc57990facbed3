package repository

import "github.com/caixalivre/pdv-api/internal/domain/entity"

// StockMovementRepository define a porta de persistência para o ledger de estoque.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByBusiness lista movimentos do tenant; productID vazio = todos os produtos.
	ListByBusiness(businessID, productID string, limit, offset int) ([]*entity.StockMovement, error)
}
