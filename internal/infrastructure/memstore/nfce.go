package memstore

import (
	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
)

var _ repository.NFCeRepository = (*nfceRepo)(nil)

type nfceRepo struct{ s *Store }

func (r *nfceRepo) Create(nfce *entity.NFCe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.receipts[nfce.BusinessID] {
		if n.ID == nfce.ID || n.AccessKey == nfce.AccessKey {
			return domain.ErrDuplicate
		}
	}
	clone := *nfce
	r.s.receipts[nfce.BusinessID] = append(r.s.receipts[nfce.BusinessID], &clone)
	return nil
}

func (r *nfceRepo) GetByID(id string) (*entity.NFCe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, receipts := range r.s.receipts {
		for _, n := range receipts {
			if n.ID == id {
				clone := *n
				return &clone, nil
			}
		}
	}
	return nil, nil
}

// NextNumber varre a série do tenant; sem registros, a numeração começa em 1.
func (r *nfceRepo) NextNumber(businessID string, series int) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	max := 0
	for _, n := range r.s.receipts[businessID] {
		if n.Series == series && n.Number > max {
			max = n.Number
		}
	}
	return max + 1, nil
}

func (r *nfceRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.NFCe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := r.s.receipts[businessID]
	list := make([]*entity.NFCe, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		clone := *all[i]
		list = append(list, &clone)
	}
	return paginate(list, limit, offset), nil
}
