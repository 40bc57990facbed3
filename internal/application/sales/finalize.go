package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
)

// FinalizeSaleUseCase finaliza uma venda do caixa: grava a venda, seus itens,
// a baixa de estoque e um movimento de saída por linha dentro de UMA
// transação. Se qualquer passo falhar, nada fica visível e o carrinho do
// operador permanece intacto para nova tentativa.
//
// Não há controle otimista nem pessimista sobre a baixa de estoque além da
// própria transação: duas finalizações concorrentes do mesmo produto podem
// ambas passar pela checagem e decrementar de forma independente (limitação
// conhecida, sem retry nem versionamento).
type FinalizeSaleUseCase struct {
	store store.Provider
}

// NewFinalizeSaleUseCase constrói o caso de uso.
func NewFinalizeSaleUseCase(provider store.Provider) *FinalizeSaleUseCase {
	return &FinalizeSaleUseCase{store: provider}
}

// FinalizeInput entrada da finalização.
type FinalizeInput struct {
	BusinessID    string
	OperatorID    string
	PaymentMethod string
	Discount      decimal.Decimal
	Items         []dto.SaleItemRequest
}

// Finalize valida, calcula o total e grava venda + itens + baixa de estoque +
// movimentos em uma transação. Venda vazia é rejeitada antes de qualquer
// escrita.
func (uc *FinalizeSaleUseCase) Finalize(ctx context.Context, in FinalizeInput) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptySale
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	s := uc.store.Select(ctx)

	// Pré-validação fora da transação: produto existe, é do tenant e tem
	// estoque para a SOMA das linhas (o mesmo produto pode aparecer em mais de
	// uma linha). A checagem definitiva de saldo acontece de novo dentro da tx.
	needed := make(map[string]int, len(in.Items))
	for _, item := range in.Items {
		needed[item.ProductID] += item.Quantity
	}
	products := make(map[string]*entity.Product, len(needed))
	for _, item := range in.Items {
		if _, ok := products[item.ProductID]; ok {
			continue
		}
		product, err := s.Products.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.BusinessID != in.BusinessID {
			return nil, domain.ErrForbidden
		}
		if product.Stock < needed[item.ProductID] {
			return nil, domain.ErrInsufficientStock
		}
		products[item.ProductID] = product
	}

	total := decimal.Zero
	for _, item := range in.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	total = total.Sub(in.Discount)

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		BusinessID:    in.BusinessID,
		OperatorID:    in.OperatorID,
		Total:         total,
		Discount:      in.Discount,
		PaymentMethod: in.PaymentMethod,
		Status:        entity.SaleStatusCompleted,
		CreatedAt:     now,
	}
	saleItems := make([]*entity.SaleItem, 0, len(in.Items))
	for _, item := range in.Items {
		saleItems = append(saleItems, &entity.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      sale.ID,
			ProductID:   item.ProductID,
			ProductName: products[item.ProductID].Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	// Venda, itens, baixa de estoque e ledger na MESMA transação: uma falha em
	// qualquer passo desfaz tudo, inclusive a venda já inserida.
	err := s.Tx.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return fmt.Errorf("gravar venda: %w", err)
		}
		for _, item := range saleItems {
			if err := saleRepo.CreateItem(item); err != nil {
				return fmt.Errorf("gravar item: %w", err)
			}
		}
		for _, item := range saleItems {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil || product.Stock < item.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.UpdateStock(item.ProductID, product.Stock-item.Quantity); err != nil {
				return fmt.Errorf("baixar estoque: %w", err)
			}
			mov := &entity.StockMovement{
				ID:         uuid.New().String(),
				BusinessID: in.BusinessID,
				ProductID:  item.ProductID,
				Type:       entity.MovementTypeOut,
				Quantity:   item.Quantity,
				Reason:     "sale - " + in.PaymentMethod,
				OperatorID: in.OperatorID,
				CreatedAt:  now,
			}
			if err := movementRepo.Create(mov); err != nil {
				return fmt.Errorf("gravar movimento: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, saleItems), nil
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:            sale.ID,
		BusinessID:    sale.BusinessID,
		OperatorID:    sale.OperatorID,
		Total:         sale.Total,
		Discount:      sale.Discount,
		PaymentMethod: sale.PaymentMethod,
		Status:        sale.Status,
		CreatedAt:     sale.CreatedAt,
	}
	for _, item := range items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	return out
}
