package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*reportRepo)(nil)

// reportRepo calcula os mesmos agregados do adaptador SQL, percorrendo as
// coleções em memória. Vendas canceladas ficam de fora; intervalo [start, end).
type reportRepo struct{ s *Store }

func (r *reportRepo) SalesSummary(_ context.Context, businessID string, start, end time.Time, topN int) (*repository.SalesSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	summary := &repository.SalesSummary{}
	byPayment := make(map[string]*repository.PaymentBreakdown)
	byProduct := make(map[string]*repository.TopProduct)

	for _, sale := range r.s.sales[businessID] {
		if sale.Status != entity.SaleStatusCompleted {
			continue
		}
		if sale.CreatedAt.Before(start) || !sale.CreatedAt.Before(end) {
			continue
		}
		summary.Count++
		summary.Revenue = summary.Revenue.Add(sale.Total)

		p, ok := byPayment[sale.PaymentMethod]
		if !ok {
			p = &repository.PaymentBreakdown{PaymentMethod: sale.PaymentMethod}
			byPayment[sale.PaymentMethod] = p
		}
		p.Count++
		p.Revenue = p.Revenue.Add(sale.Total)

		for _, item := range r.s.saleItems[sale.ID] {
			t, ok := byProduct[item.ProductID]
			if !ok {
				t = &repository.TopProduct{ProductID: item.ProductID, ProductName: item.ProductName}
				byProduct[item.ProductID] = t
			}
			t.Quantity += item.Quantity
			t.Revenue = t.Revenue.Add(item.Total)
		}
	}

	for _, p := range byPayment {
		summary.ByPayment = append(summary.ByPayment, *p)
	}
	sort.Slice(summary.ByPayment, func(i, j int) bool {
		return summary.ByPayment[i].Revenue.GreaterThan(summary.ByPayment[j].Revenue)
	})

	for _, t := range byProduct {
		summary.TopProducts = append(summary.TopProducts, *t)
	}
	sort.Slice(summary.TopProducts, func(i, j int) bool {
		return summary.TopProducts[i].Quantity > summary.TopProducts[j].Quantity
	})
	if topN > 0 && len(summary.TopProducts) > topN {
		summary.TopProducts = summary.TopProducts[:topN]
	}
	return summary, nil
}
