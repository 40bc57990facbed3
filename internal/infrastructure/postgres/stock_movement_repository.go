package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação do ledger de estoque sobre PostgreSQL
// (usável com pool ou tx). A tabela é append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste um lançamento de estoque.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, business_id, product_id, type, quantity, reason, operator_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.BusinessID, movement.ProductID, movement.Type,
		movement.Quantity, movement.Reason, nullIfEmpty(movement.OperatorID), movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByBusiness lista lançamentos do tenant, mais recentes primeiro;
// productID vazio devolve de todos os produtos.
func (r *StockMovementRepo) ListByBusiness(businessID, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, business_id, product_id, type, quantity, reason, operator_id, created_at
		FROM stock_movements WHERE business_id = $1`
	args := []any{businessID}
	if productID != "" {
		args = append(args, productID)
		query += ` AND product_id = $` + strconv.Itoa(len(args))
	}
	args = append(args, limit)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, offset)
	query += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var operator *string
		if err := rows.Scan(&m.ID, &m.BusinessID, &m.ProductID, &m.Type,
			&m.Quantity, &m.Reason, &operator, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if operator != nil {
			m.OperatorID = *operator
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
