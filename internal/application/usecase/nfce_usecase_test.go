package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/application/usecase"
	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/nfce"
	"github.com/caixalivre/pdv-api/internal/infrastructure/memstore"
)

type memProvider struct{ set *store.Set }

func (p *memProvider) Select(context.Context) *store.Set { return p.set }
func (p *memProvider) Persistent(context.Context) bool   { return false }

const testCNPJ = "11222333000181"

func seedSale(t *testing.T, set *store.Set, id, businessID string) {
	t.Helper()
	require.NoError(t, set.Sales.Create(&entity.Sale{
		ID: id, BusinessID: businessID, Status: entity.SaleStatusCompleted,
		Total: decimal.NewFromInt(10), PaymentMethod: entity.PaymentCash,
		CreatedAt: time.Now(),
	}))
}

func newNFCeUC(set *store.Set) *usecase.NFCeUseCase {
	return usecase.NewNFCeUseCase(&memProvider{set: set}, usecase.NFCeConfig{
		Environment: entity.NFCeEnvHomologation,
		UFCode:      "35",
		Series:      1,
	})
}

func TestNFCe_EmiteChaveValida(t *testing.T) {
	set := memstore.NewStore().Set()
	seedSale(t, set, "s1", "biz-a")
	uc := newNFCeUC(set)

	out, err := uc.Create(context.Background(), "biz-a", dto.CreateNFCeRequest{
		SaleID: "s1", CNPJ: testCNPJ,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Number)
	assert.Equal(t, 1, out.Series)
	assert.Equal(t, entity.NFCeStatusPending, out.Status)
	assert.Equal(t, entity.NFCeEnvHomologation, out.Environment)
	assert.NoError(t, nfce.Validate(out.AccessKey), "a chave de 44 dígitos deve ter DV correto")
}

func TestNFCe_NumeracaoSequencial(t *testing.T) {
	set := memstore.NewStore().Set()
	seedSale(t, set, "s1", "biz-a")
	seedSale(t, set, "s2", "biz-a")
	uc := newNFCeUC(set)

	first, err := uc.Create(context.Background(), "biz-a", dto.CreateNFCeRequest{SaleID: "s1", CNPJ: testCNPJ})
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), "biz-a", dto.CreateNFCeRequest{SaleID: "s2", CNPJ: testCNPJ})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, second.Number)
	assert.NotEqual(t, first.AccessKey, second.AccessKey)
}

func TestNFCe_CNPJInvalido(t *testing.T) {
	set := memstore.NewStore().Set()
	seedSale(t, set, "s1", "biz-a")
	uc := newNFCeUC(set)

	_, err := uc.Create(context.Background(), "biz-a", dto.CreateNFCeRequest{SaleID: "s1", CNPJ: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNFCe_VendaInexistenteOuDeOutroTenant(t *testing.T) {
	set := memstore.NewStore().Set()
	seedSale(t, set, "s1", "biz-b")
	uc := newNFCeUC(set)

	_, err := uc.Create(context.Background(), "biz-a", dto.CreateNFCeRequest{SaleID: "nope", CNPJ: testCNPJ})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(context.Background(), "biz-a", dto.CreateNFCeRequest{SaleID: "s1", CNPJ: testCNPJ})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
