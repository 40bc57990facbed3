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

var _ repository.NFCeRepository = (*NFCeRepo)(nil)

// NFCeRepo implementação da porta NFCeRepository sobre PostgreSQL.
type NFCeRepo struct {
	q Querier
}

// NewNFCeRepository constrói o adaptador de registros fiscais.
func NewNFCeRepository(q Querier) *NFCeRepo {
	return &NFCeRepo{q: q}
}

const nfceColumns = `id, business_id, sale_id, number, series, access_key, environment, status, protocol, issued_at, created_at, updated_at`

// Create persiste um registro fiscal.
func (r *NFCeRepo) Create(nfce *entity.NFCe) error {
	query := `
		INSERT INTO nfce_receipts (` + nfceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		nfce.ID, nfce.BusinessID, nfce.SaleID, nfce.Number, nfce.Series,
		nfce.AccessKey, nfce.Environment, nfce.Status, nullIfEmpty(nfce.Protocol),
		nfce.IssuedAt, nfce.CreatedAt, nfce.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert nfce: %w", err)
	}
	return nil
}

// GetByID obtém um registro fiscal por ID.
func (r *NFCeRepo) GetByID(id string) (*entity.NFCe, error) {
	query := `SELECT ` + nfceColumns + ` FROM nfce_receipts WHERE id = $1`
	n, err := scanNFCe(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nfce: %w", err)
	}
	return n, nil
}

// NextNumber devolve o próximo número sequencial da série para o tenant.
func (r *NFCeRepo) NextNumber(businessID string, series int) (int, error) {
	var max *int
	err := r.q.QueryRow(context.Background(),
		`SELECT MAX(number) FROM nfce_receipts WHERE business_id = $1 AND series = $2`,
		businessID, series,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("next nfce number: %w", err)
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

// ListByBusiness lista registros fiscais do tenant, mais recentes primeiro.
func (r *NFCeRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.NFCe, error) {
	query := `SELECT ` + nfceColumns + ` FROM nfce_receipts WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list nfce: %w", err)
	}
	defer rows.Close()
	var list []*entity.NFCe
	for rows.Next() {
		n, err := scanNFCe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan nfce: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func scanNFCe(row pgxScanner) (*entity.NFCe, error) {
	var n entity.NFCe
	var protocol *string
	err := row.Scan(
		&n.ID, &n.BusinessID, &n.SaleID, &n.Number, &n.Series, &n.AccessKey,
		&n.Environment, &n.Status, &protocol, &n.IssuedAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if protocol != nil {
		n.Protocol = *protocol
	}
	return &n, nil
}
