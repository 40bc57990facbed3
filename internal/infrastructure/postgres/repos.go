package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caixalivre/pdv-api/internal/application/store"
)

// NewRepoSet monta o conjunto completo de portas de persistência sobre o pool.
func NewRepoSet(pool *pgxpool.Pool) *store.Set {
	return &store.Set{
		Businesses: NewBusinessRepository(pool),
		Users:      NewUserRepository(pool),
		Products:   NewProductRepository(pool),
		Sales:      NewSaleRepository(pool),
		Movements:  NewStockMovementRepository(pool),
		Receipts:   NewNFCeRepository(pool),
		Reports:    NewReportRepository(pool),
		Tx:         NewTxRunner(pool),
	}
}
