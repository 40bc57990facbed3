package sales

import (
	"context"
	"time"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
)

// ListSalesUseCase listagem de vendas do tenant com filtro de datas.
type ListSalesUseCase struct {
	store store.Provider
}

// NewListSalesUseCase constrói o caso de uso.
func NewListSalesUseCase(provider store.Provider) *ListSalesUseCase {
	return &ListSalesUseCase{store: provider}
}

// ListQuery parâmetros da listagem. DateFilter "today" restringe ao dia
// corrente (calendário local); Start/End têm prioridade quando presentes.
type ListQuery struct {
	DateFilter string
	Start      time.Time
	End        time.Time
	Limit      int
	Offset     int
}

// List devolve as vendas do tenant dentro do intervalo pedido, com itens.
func (uc *ListSalesUseCase) List(ctx context.Context, businessID string, q ListQuery) (*dto.SaleListResponse, error) {
	filter := repository.SaleFilter{
		Start:  q.Start,
		End:    q.End,
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if q.DateFilter == "today" && q.Start.IsZero() {
		now := time.Now()
		filter.Start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		filter.End = filter.Start.AddDate(0, 0, 1)
	}

	s := uc.store.Select(ctx)
	list, err := s.Sales.ListByBusiness(businessID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, sale := range list {
		saleItems, err := s.Sales.ListItems(sale.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toSaleResponse(sale, saleItems))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// GetByID devolve uma venda do tenant com seus itens.
func (uc *ListSalesUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.SaleResponse, error) {
	s := uc.store.Select(ctx)
	sale, err := s.Sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	if sale.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	items, err := s.Sales.ListItems(sale.ID)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}
