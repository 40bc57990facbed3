package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/stock"
	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/infrastructure/memstore"
)

type memProvider struct{ set *store.Set }

func (p *memProvider) Select(context.Context) *store.Set { return p.set }
func (p *memProvider) Persistent(context.Context) bool   { return false }

func seed(t *testing.T, set *store.Set, stockQty int) {
	t.Helper()
	require.NoError(t, set.Products.Create(&entity.Product{
		ID: "p1", BusinessID: "biz-a", Name: "Café",
		Price: decimal.NewFromInt(8), Stock: stockQty, Active: true,
	}))
}

func TestRegister_EntradaSomaAoSaldo(t *testing.T) {
	set := memstore.NewStore().Set()
	seed(t, set, 3)
	uc := stock.NewRegisterMovementUseCase(&memProvider{set: set})

	out, err := uc.Register(context.Background(), "biz-a", "op-1", dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 7, Reason: "compra NF 1234",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeIn, out.Type)

	p, err := set.Products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)
}

func TestRegister_SaidaComSaldoInsuficiente(t *testing.T) {
	set := memstore.NewStore().Set()
	seed(t, set, 2)
	uc := stock.NewRegisterMovementUseCase(&memProvider{set: set})

	_, err := uc.Register(context.Background(), "biz-a", "op-1", dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeOut, Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// saldo e ledger intactos
	p, err := set.Products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Stock)
	movs, err := set.Movements.ListByBusiness("biz-a", "", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestRegister_TipoInvalido(t *testing.T) {
	set := memstore.NewStore().Set()
	seed(t, set, 2)
	uc := stock.NewRegisterMovementUseCase(&memProvider{set: set})

	_, err := uc.Register(context.Background(), "biz-a", "op-1", dto.RegisterMovementRequest{
		ProductID: "p1", Type: "ajuste", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ProdutoDeOutroTenant(t *testing.T) {
	set := memstore.NewStore().Set()
	seed(t, set, 2)
	uc := stock.NewRegisterMovementUseCase(&memProvider{set: set})

	_, err := uc.Register(context.Background(), "biz-b", "op-1", dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
