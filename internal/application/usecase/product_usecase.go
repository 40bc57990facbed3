package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
)

// ProductUseCase casos de uso CRUD para produtos. Stock não é editável por
// aqui: o saldo muda apenas via movimentos (venda ou lançamento manual); a
// exceção é o estoque inicial informado na criação.
type ProductUseCase struct {
	store store.Provider
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(provider store.Provider) *ProductUseCase {
	return &ProductUseCase{store: provider}
}

// Create cria um produto. Name e Price são obrigatórios; código de barras é
// único por tenant.
func (uc *ProductUseCase) Create(ctx context.Context, businessID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsNegative() || in.Price.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	s := uc.store.Select(ctx)
	if in.Barcode != "" {
		existing, err := s.Products.GetByBarcode(businessID, in.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	if in.Unit == "" {
		in.Unit = "un"
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       in.Name,
		Barcode:    in.Barcode,
		Price:      in.Price,
		Cost:       in.Cost,
		Stock:      in.Stock,
		MinStock:   in.MinStock,
		Category:   in.Category,
		Unit:       in.Unit,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devolve um produto do tenant.
func (uc *ProductUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.ProductResponse, error) {
	s := uc.store.Select(ctx)
	product, err := s.Products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(product), nil
}

// GetByBarcode busca o produto pelo código de barras lido no caixa.
func (uc *ProductUseCase) GetByBarcode(ctx context.Context, businessID, barcode string) (*dto.ProductResponse, error) {
	s := uc.store.Select(ctx)
	product, err := s.Products.GetByBarcode(businessID, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update atualiza um produto. Não altera Stock (somente via movimentos).
func (uc *ProductUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	s := uc.store.Select(ctx)
	product, err := s.Products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := s.Products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista produtos do tenant com paginação e filtro de reposição.
func (uc *ProductUseCase) List(ctx context.Context, businessID string, lowStockOnly bool, limit, offset int) (*dto.ProductListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	s := uc.store.Select(ctx)
	list, err := s.Products.ListByBusiness(businessID, lowStockOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove um produto do tenant.
func (uc *ProductUseCase) Delete(ctx context.Context, businessID, id string) error {
	s := uc.store.Select(ctx)
	product, err := s.Products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.BusinessID != businessID {
		return domain.ErrForbidden
	}
	return s.Products.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		BusinessID: p.BusinessID,
		Name:       p.Name,
		Barcode:    p.Barcode,
		Price:      p.Price,
		Cost:       p.Cost,
		Stock:      p.Stock,
		MinStock:   p.MinStock,
		Category:   p.Category,
		Unit:       p.Unit,
		Active:     p.Active,
		LowStock:   p.LowStock(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
