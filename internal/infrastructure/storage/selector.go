// Package storage decide, chamada a chamada, se uma operação é servida pelo
// PostgreSQL ou pelo armazenamento de contingência em memória.
package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/pkg/logger"
)

// pingTimeout limita o custo da sondagem por operação quando o banco está
// fora do ar.
const pingTimeout = 500 * time.Millisecond

// Selector implementa store.Provider. A disponibilidade é sondada a cada
// Select; nada é cacheado, então uma reconexão volta a valer na chamada
// seguinte.
type Selector struct {
	pool *pgxpool.Pool
	pg   *store.Set
	mem  *store.Set
	log  *logger.Logger
}

var _ store.Provider = (*Selector)(nil)

// NewSelector monta o seletor. pool e pg podem ser nil quando a app sobe sem
// configuração de banco; nesse caso toda operação é servida pela memória.
func NewSelector(pool *pgxpool.Pool, pg, mem *store.Set, log *logger.Logger) *Selector {
	return &Selector{pool: pool, pg: pg, mem: mem, log: log}
}

// Select devolve o backend da operação corrente.
func (s *Selector) Select(ctx context.Context) *store.Set {
	if s.available(ctx) {
		return s.pg
	}
	return s.mem
}

// Persistent informa se a próxima operação seria servida pelo banco.
func (s *Selector) Persistent(ctx context.Context) bool {
	return s.available(ctx)
}

func (s *Selector) available(ctx context.Context) bool {
	if s.pool == nil || s.pg == nil {
		return false
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.pool.Ping(pingCtx); err != nil {
		s.log.Warn().Err(err).Msg("banco indisponível, operação servida pela memória")
		return false
	}
	return true
}
