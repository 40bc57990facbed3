package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação da porta SaleRepository sobre PostgreSQL (usável com
// pool ou tx). Dentro do TxRunner, Create e CreateItem participam da mesma
// transação da baixa de estoque.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste o cabeçalho da venda.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, business_id, operator_id, total, discount, payment_method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.BusinessID, sale.OperatorID, sale.Total, sale.Discount,
		sale.PaymentMethod, sale.Status, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha da venda.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, product_name, quantity, unit_price, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.ProductName,
		item.Quantity, item.UnitPrice, item.Total,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtém uma venda por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, business_id, operator_id, total, discount, payment_method, status, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.BusinessID, &s.OperatorID, &s.Total, &s.Discount,
		&s.PaymentMethod, &s.Status, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ListItems lista as linhas de uma venda.
func (r *SaleRepo) ListItems(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, total
		FROM sale_items WHERE sale_id = $1 ORDER BY product_name`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.Total); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// ListByBusiness lista vendas do tenant, mais recentes primeiro, com filtro
// opcional de intervalo de datas (Start inclusivo, End exclusivo).
func (r *SaleRepo) ListByBusiness(businessID string, filter repository.SaleFilter) ([]*entity.Sale, error) {
	query := `
		SELECT id, business_id, operator_id, total, discount, payment_method, status, created_at
		FROM sales WHERE business_id = $1`
	args := []any{businessID}
	if !filter.Start.IsZero() {
		args = append(args, filter.Start)
		query += ` AND created_at >= $` + strconv.Itoa(len(args))
	}
	if !filter.End.IsZero() {
		args = append(args, filter.End)
		query += ` AND created_at < $` + strconv.Itoa(len(args))
	}
	args = append(args, filter.Limit)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.OperatorID, &s.Total, &s.Discount,
			&s.PaymentMethod, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
