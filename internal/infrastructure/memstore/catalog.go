package memstore

import (
	"sort"

	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
)

var (
	_ repository.BusinessRepository = (*businessRepo)(nil)
	_ repository.UserRepository     = (*userRepo)(nil)
	_ repository.ProductRepository  = (*productRepo)(nil)
)

// ─── Business ────────────────────────────────────────────────────────────────

type businessRepo struct{ s *Store }

func (r *businessRepo) Create(business *entity.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.businesses[business.ID]; ok {
		return domain.ErrDuplicate
	}
	clone := *business
	r.s.businesses[business.ID] = &clone
	return nil
}

func (r *businessRepo) GetByID(id string) (*entity.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.businesses[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (r *businessRepo) List(limit, offset int) ([]*entity.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Business, 0, len(r.s.businesses))
	for _, b := range r.s.businesses {
		clone := *b
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return paginate(list, limit, offset), nil
}

func (r *businessRepo) Update(business *entity.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.businesses[business.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *business
	r.s.businesses[business.ID] = &clone
	return nil
}

// ─── User ────────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	clone := *user
	r.s.users[user.ID] = &clone
	return nil
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *userRepo) FindByEmail(email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

// ─── Product ─────────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if product.Barcode != "" {
		for _, p := range r.s.products {
			if p.BusinessID == product.BusinessID && p.Barcode == product.Barcode {
				return domain.ErrDuplicate
			}
		}
	}
	clone := *product
	r.s.products[product.ID] = &clone
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *productRepo) GetByBarcode(businessID, barcode string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.BusinessID == businessID && p.Barcode == barcode {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *productRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	clone := *product
	clone.Stock = current.Stock // Stock só muda via UpdateStock
	r.s.products[product.ID] = &clone
	return nil
}

func (r *productRepo) UpdateStock(productID string, stock int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *productRepo) ListByBusiness(businessID string, lowStockOnly bool, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.BusinessID != businessID {
			continue
		}
		if lowStockOnly && !p.LowStock() {
			continue
		}
		clone := *p
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

func (r *productRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}
