// Package memstore é o armazenamento de contingência: coleções em processo,
// escopadas por tenant, que espelham as mesmas portas de persistência do
// PostgreSQL. Entra em cena quando não há conexão com o banco — o caixa
// continua vendendo — e não tem durabilidade entre reinícios do processo.
// Dados gravados aqui não são migrados quando o banco volta.
package memstore

import (
	"sync"

	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
)

// Store guarda todas as coleções sob um único RWMutex. O lock existe apenas
// para a segurança dos maps; não há controle de concorrência de negócio além
// dele (mesma limitação documentada do caminho persistente).
type Store struct {
	mu sync.RWMutex

	businesses map[string]*entity.Business
	users      map[string]*entity.User
	products   map[string]*entity.Product

	sales     map[string][]*entity.Sale // por businessID, ordem de gravação
	salesByID map[string]*entity.Sale
	saleItems map[string][]*entity.SaleItem // por saleID

	movements map[string][]*entity.StockMovement // por businessID
	receipts  map[string][]*entity.NFCe          // por businessID
}

// NewStore cria o armazenamento em memória vazio.
func NewStore() *Store {
	return &Store{
		businesses: make(map[string]*entity.Business),
		users:      make(map[string]*entity.User),
		products:   make(map[string]*entity.Product),
		sales:      make(map[string][]*entity.Sale),
		salesByID:  make(map[string]*entity.Sale),
		saleItems:  make(map[string][]*entity.SaleItem),
		movements:  make(map[string][]*entity.StockMovement),
		receipts:   make(map[string][]*entity.NFCe),
	}
}

// Set monta o conjunto de portas servido por este armazenamento.
func (s *Store) Set() *store.Set {
	return &store.Set{
		Businesses: &businessRepo{s},
		Users:      &userRepo{s},
		Products:   &productRepo{s},
		Sales:      &saleRepo{s},
		Movements:  &movementRepo{s},
		Receipts:   &nfceRepo{s},
		Reports:    &reportRepo{s},
		Tx:         &txRunner{s},
	}
}

// paginate aplica limit/offset sobre uma fatia já filtrada.
func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
