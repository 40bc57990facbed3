package repository

import (
	"time"

	"github.com/caixalivre/pdv-api/internal/domain/entity"
)

// SaleFilter restringe a listagem de vendas de um tenant.
// Start/End delimitam CreatedAt (inclusivo/exclusivo); zero = sem limite.
type SaleFilter struct {
	Start  time.Time
	End    time.Time
	Limit  int
	Offset int
}

// SaleRepository define a porta de persistência para Sale e seus itens.
// Create e CreateItem participam da mesma transação quando o adaptador está
// atado a uma tx (ver TxRunner).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	ListItems(saleID string) ([]*entity.SaleItem, error)
	ListByBusiness(businessID string, filter SaleFilter) ([]*entity.Sale, error)
}
