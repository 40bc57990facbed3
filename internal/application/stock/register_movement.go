// Package stock registra lançamentos manuais no ledger de estoque (entradas
// de compra, perdas, ajustes de contagem). A baixa automática por venda fica
// no caso de uso de finalização; aqui entra o que o operador lança à mão.
package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
)

// RegisterMovementUseCase registra um movimento de estoque de forma
// transacional: atualiza o saldo do produto e grava o lançamento juntos.
type RegisterMovementUseCase struct {
	store store.Provider
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(provider store.Provider) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{store: provider}
}

// Register valida e grava o movimento. Uma saída que deixaria o saldo
// negativo é rejeitada com ErrInsufficientStock antes de qualquer escrita.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, businessID, operatorID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}

	s := uc.store.Select(ctx)
	product, err := s.Products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}

	mov := &entity.StockMovement{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		ProductID:  in.ProductID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		Reason:     in.Reason,
		OperatorID: operatorID,
		CreatedAt:  time.Now(),
	}

	err = s.Tx.Run(ctx, func(
		_ repository.SaleRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		current, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		newStock := current.Stock
		switch in.Type {
		case entity.MovementTypeIn:
			newStock += in.Quantity
		case entity.MovementTypeOut:
			if current.Stock < in.Quantity {
				return domain.ErrInsufficientStock
			}
			newStock -= in.Quantity
		}
		if err := productRepo.UpdateStock(in.ProductID, newStock); err != nil {
			return fmt.Errorf("atualizar saldo: %w", err)
		}
		return movementRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}

	return toMovementResponse(mov), nil
}

// List lista movimentos do tenant; productID vazio devolve de todos os produtos.
func (uc *RegisterMovementUseCase) List(ctx context.Context, businessID, productID string, limit, offset int) (*dto.MovementListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	s := uc.store.Select(ctx)
	list, err := s.Movements.ListByBusiness(businessID, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, mov := range list {
		items = append(items, *toMovementResponse(mov))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:         m.ID,
		BusinessID: m.BusinessID,
		ProductID:  m.ProductID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		Reason:     m.Reason,
		OperatorID: m.OperatorID,
		CreatedAt:  m.CreatedAt,
	}
}
