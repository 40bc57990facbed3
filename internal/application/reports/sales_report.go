// Package reports consultas agregadas de vendas para o painel do lojista.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/store"
)

// topProductsLimit quantos produtos aparecem no ranking do relatório.
const topProductsLimit = 5

// SalesReportUseCase agrega contagem, receita, ticket médio, quebra por forma
// de pagamento e ranking de produtos em um intervalo de datas.
type SalesReportUseCase struct {
	store store.Provider
}

// NewSalesReportUseCase constrói o caso de uso.
func NewSalesReportUseCase(provider store.Provider) *SalesReportUseCase {
	return &SalesReportUseCase{store: provider}
}

// SalesSummary devolve os agregados do período. Datas zero usam o dia
// corrente; End é tratado como exclusivo (início do dia seguinte).
func (uc *SalesReportUseCase) SalesSummary(ctx context.Context, businessID string, start, end time.Time) (*dto.SalesReportResponse, error) {
	if start.IsZero() {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	if end.IsZero() {
		end = start.AddDate(0, 0, 1)
	}

	s := uc.store.Select(ctx)
	summary, err := s.Reports.SalesSummary(ctx, businessID, start, end, topProductsLimit)
	if err != nil {
		return nil, err
	}

	avg := decimal.Zero
	if summary.Count > 0 {
		avg = summary.Revenue.Div(decimal.NewFromInt(int64(summary.Count))).Round(2)
	}

	out := &dto.SalesReportResponse{
		StartDate:     start,
		EndDate:       end,
		Count:         summary.Count,
		Revenue:       summary.Revenue,
		AverageTicket: avg,
	}
	for _, p := range summary.ByPayment {
		out.ByPayment = append(out.ByPayment, dto.PaymentBreakdownResponse{
			PaymentMethod: p.PaymentMethod,
			Count:         p.Count,
			Revenue:       p.Revenue,
		})
	}
	for _, p := range summary.TopProducts {
		out.TopProducts = append(out.TopProducts, dto.TopProductResponse{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			Revenue:     p.Revenue,
		})
	}
	return out, nil
}
