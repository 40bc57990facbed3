package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregação somente leitura sobre vendas concluídas.
type ReportRepo struct {
	q Querier
}

// NewReportRepository constrói o adaptador de relatórios.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesSummary agrega contagem, receita, quebra por forma de pagamento e
// ranking de produtos no intervalo [start, end). Vendas canceladas ficam de
// fora. COALESCE devolve zero em período sem vendas.
func (r *ReportRepo) SalesSummary(ctx context.Context, businessID string, start, end time.Time, topN int) (*repository.SalesSummary, error) {
	summary := &repository.SalesSummary{}

	const totalsQuery = `
	SELECT COUNT(*), COALESCE(SUM(total), 0)
	FROM sales
	WHERE business_id = $1 AND created_at >= $2 AND created_at < $3 AND status = $4`
	err := r.q.QueryRow(ctx, totalsQuery, businessID, start, end, entity.SaleStatusCompleted).
		Scan(&summary.Count, &summary.Revenue)
	if err != nil {
		return nil, fmt.Errorf("report.SalesSummary totais: %w", err)
	}

	const paymentQuery = `
	SELECT payment_method, COUNT(*), COALESCE(SUM(total), 0)
	FROM sales
	WHERE business_id = $1 AND created_at >= $2 AND created_at < $3 AND status = $4
	GROUP BY payment_method
	ORDER BY SUM(total) DESC`
	rows, err := r.q.Query(ctx, paymentQuery, businessID, start, end, entity.SaleStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("report.SalesSummary pagamentos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p repository.PaymentBreakdown
		if err := rows.Scan(&p.PaymentMethod, &p.Count, &p.Revenue); err != nil {
			return nil, fmt.Errorf("report.SalesSummary scan pagamento: %w", err)
		}
		summary.ByPayment = append(summary.ByPayment, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const topQuery = `
	SELECT i.product_id, i.product_name, SUM(i.quantity), COALESCE(SUM(i.total), 0)
	FROM sale_items i
	JOIN sales s ON s.id = i.sale_id
	WHERE s.business_id = $1 AND s.created_at >= $2 AND s.created_at < $3 AND s.status = $4
	GROUP BY i.product_id, i.product_name
	ORDER BY SUM(i.quantity) DESC
	LIMIT $5`
	topRows, err := r.q.Query(ctx, topQuery, businessID, start, end, entity.SaleStatusCompleted, topN)
	if err != nil {
		return nil, fmt.Errorf("report.SalesSummary top produtos: %w", err)
	}
	defer topRows.Close()
	for topRows.Next() {
		var t repository.TopProduct
		if err := topRows.Scan(&t.ProductID, &t.ProductName, &t.Quantity, &t.Revenue); err != nil {
			return nil, fmt.Errorf("report.SalesSummary scan produto: %w", err)
		}
		summary.TopProducts = append(summary.TopProducts, t)
	}
	return summary, topRows.Err()
}
