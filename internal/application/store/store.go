// Package store define a capacidade de seleção de armazenamento: cada
// operação pede um conjunto de portas de persistência e recebe o backend
// persistente quando há conexão, ou o backend em memória quando não há.
// A decisão nunca é cacheada; uma reconexão no meio da sessão volta a servir
// do banco nas chamadas seguintes, sem migrar o que foi escrito no fallback.
package store

import (
	"context"

	"github.com/caixalivre/pdv-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação, passando repositórios
// atados a essa transação. No backend persistente garante atomicidade
// (commit/rollback); no backend em memória executa direto sobre as coleções,
// sem desfazer passos já aplicados (limitação documentada do fallback).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// Set agrupa as portas de persistência servidas por um backend.
type Set struct {
	Businesses repository.BusinessRepository
	Users      repository.UserRepository
	Products   repository.ProductRepository
	Sales      repository.SaleRepository
	Movements  repository.StockMovementRepository
	Receipts   repository.NFCeRepository
	Reports    repository.ReportRepository
	Tx         TxRunner
}

// Provider escolhe o Set de uma operação. Select é avaliado a cada chamada.
type Provider interface {
	Select(ctx context.Context) *Set
	// Persistent informa se a próxima operação seria servida pelo banco
	// (usado pelo health check; o valor não é uma reserva).
	Persistent(ctx context.Context) bool
}
