package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementação da porta BusinessRepository sobre PostgreSQL.
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository constrói o adaptador de persistência para tenants.
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

const businessColumns = `id, name, trade_name, cnpj, logo_url, theme_color, plan, status, created_at, updated_at`

// Create persiste um novo tenant.
func (r *BusinessRepo) Create(business *entity.Business) error {
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		business.ID, business.Name, business.TradeName, nullIfEmpty(business.CNPJ),
		business.LogoURL, business.ThemeColor, business.Plan, business.Status,
		business.CreatedAt, business.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtém um tenant por ID.
func (r *BusinessRepo) GetByID(id string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	b, err := scanBusiness(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return b, nil
}

// List lista todos os tenants com paginação.
func (r *BusinessRepo) List(limit, offset int) ([]*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update atualiza um tenant existente.
func (r *BusinessRepo) Update(business *entity.Business) error {
	query := `
		UPDATE businesses
		SET name = $2, trade_name = $3, cnpj = $4, logo_url = $5, theme_color = $6,
		    plan = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		business.ID, business.Name, business.TradeName, nullIfEmpty(business.CNPJ),
		business.LogoURL, business.ThemeColor, business.Plan, business.Status, business.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	return nil
}

func scanBusiness(row pgxScanner) (*entity.Business, error) {
	var b entity.Business
	var cnpj *string
	err := row.Scan(
		&b.ID, &b.Name, &b.TradeName, &cnpj, &b.LogoURL, &b.ThemeColor,
		&b.Plan, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if cnpj != nil {
		b.CNPJ = *cnpj
	}
	return &b, nil
}
