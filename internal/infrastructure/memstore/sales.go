package memstore

import (
	"context"

	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository          = (*saleRepo)(nil)
	_ repository.StockMovementRepository = (*movementRepo)(nil)
	_ store.TxRunner                     = (*txRunner)(nil)
)

// ─── Sale ────────────────────────────────────────────────────────────────────

type saleRepo struct{ s *Store }

func (r *saleRepo) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	clone := *sale
	r.s.sales[sale.BusinessID] = append(r.s.sales[sale.BusinessID], &clone)
	r.s.salesByID[sale.ID] = &clone
	return nil
}

func (r *saleRepo) CreateItem(item *entity.SaleItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	clone := *item
	r.s.saleItems[item.SaleID] = append(r.s.saleItems[item.SaleID], &clone)
	return nil
}

func (r *saleRepo) GetByID(id string) (*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sale, ok := r.s.salesByID[id]
	if !ok {
		return nil, nil
	}
	clone := *sale
	return &clone, nil
}

func (r *saleRepo) ListItems(saleID string) ([]*entity.SaleItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := r.s.saleItems[saleID]
	list := make([]*entity.SaleItem, 0, len(items))
	for _, item := range items {
		clone := *item
		list = append(list, &clone)
	}
	return list, nil
}

// ListByBusiness filtra pelo mesmo critério do SQL: Start inclusivo, End
// exclusivo, mais recentes primeiro.
func (r *saleRepo) ListByBusiness(businessID string, filter repository.SaleFilter) ([]*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := r.s.sales[businessID]
	var list []*entity.Sale
	for i := len(all) - 1; i >= 0; i-- { // ordem de gravação invertida
		sale := all[i]
		if !filter.Start.IsZero() && sale.CreatedAt.Before(filter.Start) {
			continue
		}
		if !filter.End.IsZero() && !sale.CreatedAt.Before(filter.End) {
			continue
		}
		clone := *sale
		list = append(list, &clone)
	}
	return paginate(list, filter.Limit, filter.Offset), nil
}

// ─── StockMovement ───────────────────────────────────────────────────────────

type movementRepo struct{ s *Store }

func (r *movementRepo) Create(movement *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	clone := *movement
	r.s.movements[movement.BusinessID] = append(r.s.movements[movement.BusinessID], &clone)
	return nil
}

func (r *movementRepo) ListByBusiness(businessID, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := r.s.movements[businessID]
	var list []*entity.StockMovement
	for i := len(all) - 1; i >= 0; i-- {
		mov := all[i]
		if productID != "" && mov.ProductID != productID {
			continue
		}
		clone := *mov
		list = append(list, &clone)
	}
	return paginate(list, limit, offset), nil
}

// ─── TxRunner ────────────────────────────────────────────────────────────────

// txRunner executa o callback direto sobre as coleções. Não há rollback:
// passos já aplicados permanecem se um passo seguinte falhar. É a limitação
// aceita do modo contingência; o caminho persistente dá a atomicidade real.
type txRunner struct{ s *Store }

func (t *txRunner) Run(_ context.Context, fn func(
	repository.SaleRepository,
	repository.ProductRepository,
	repository.StockMovementRepository,
) error) error {
	return fn(&saleRepo{t.s}, &productRepo{t.s}, &movementRepo{t.s})
}
