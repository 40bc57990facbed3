package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/sales"
	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
	"github.com/caixalivre/pdv-api/internal/infrastructure/memstore"
)

type memProvider struct{ set *store.Set }

func (p *memProvider) Select(context.Context) *store.Set { return p.set }
func (p *memProvider) Persistent(context.Context) bool   { return false }

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func seedProduct(t *testing.T, set *store.Set, id, businessID string, price string, stock int) {
	t.Helper()
	require.NoError(t, set.Products.Create(&entity.Product{
		ID: id, BusinessID: businessID, Name: "Produto " + id,
		Price: dec(t, price), Stock: stock, Active: true,
	}))
}

func TestFinalize_VendaVazia(t *testing.T) {
	provider := &memProvider{set: memstore.NewStore().Set()}
	uc := sales.NewFinalizeSaleUseCase(provider)

	_, err := uc.Finalize(context.Background(), sales.FinalizeInput{
		BusinessID:    "biz-a",
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrEmptySale)
}

func TestFinalize_FormaDePagamentoInvalida(t *testing.T) {
	provider := &memProvider{set: memstore.NewStore().Set()}
	uc := sales.NewFinalizeSaleUseCase(provider)

	_, err := uc.Finalize(context.Background(), sales.FinalizeInput{
		BusinessID:    "biz-a",
		PaymentMethod: "cheque",
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1, UnitPrice: dec(t, "1")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFinalize_CaminhoFeliz(t *testing.T) {
	set := memstore.NewStore().Set()
	provider := &memProvider{set: set}
	seedProduct(t, set, "p1", "biz-a", "8.50", 10)
	seedProduct(t, set, "p2", "biz-a", "3.20", 5)

	uc := sales.NewFinalizeSaleUseCase(provider)
	out, err := uc.Finalize(context.Background(), sales.FinalizeInput{
		BusinessID:    "biz-a",
		OperatorID:    "op-1",
		PaymentMethod: entity.PaymentCash,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2, UnitPrice: dec(t, "8.50")},
			{ProductID: "p2", Quantity: 1, UnitPrice: dec(t, "3.20")},
		},
	})
	require.NoError(t, err)

	// 2 × 8.50 + 1 × 3.20 = 20.20
	assert.Equal(t, "20.2", out.Total.String())
	assert.Equal(t, entity.SaleStatusCompleted, out.Status)
	require.Len(t, out.Items, 2)

	// baixa de estoque aplicada
	p1, err := set.Products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 8, p1.Stock)
	p2, err := set.Products.GetByID("p2")
	require.NoError(t, err)
	assert.Equal(t, 4, p2.Stock)

	// um movimento de saída por linha, com a forma de pagamento no motivo
	movs, err := set.Movements.ListByBusiness("biz-a", "", 50, 0)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	for _, m := range movs {
		assert.Equal(t, entity.MovementTypeOut, m.Type)
		assert.Equal(t, "sale - cash", m.Reason)
		assert.Equal(t, "op-1", m.OperatorID)
	}
}

func TestFinalize_ComDesconto(t *testing.T) {
	set := memstore.NewStore().Set()
	provider := &memProvider{set: set}
	seedProduct(t, set, "p1", "biz-a", "10.00", 10)

	uc := sales.NewFinalizeSaleUseCase(provider)
	out, err := uc.Finalize(context.Background(), sales.FinalizeInput{
		BusinessID:    "biz-a",
		PaymentMethod: entity.PaymentPix,
		Discount:      dec(t, "1.50"),
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 1, UnitPrice: dec(t, "10.00")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "8.5", out.Total.String())
	assert.Equal(t, "1.5", out.Discount.String())
}

func TestFinalize_EstoqueInsuficienteNaoGravaNada(t *testing.T) {
	set := memstore.NewStore().Set()
	provider := &memProvider{set: set}
	seedProduct(t, set, "p1", "biz-a", "5.00", 1)

	uc := sales.NewFinalizeSaleUseCase(provider)
	_, err := uc.Finalize(context.Background(), sales.FinalizeInput{
		BusinessID:    "biz-a",
		PaymentMethod: entity.PaymentCash,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 3, UnitPrice: dec(t, "5.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// a pré-validação falha antes de qualquer escrita
	p1, err := set.Products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 1, p1.Stock)
	list, err := set.Sales.ListByBusiness("biz-a", repository.SaleFilter{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFinalize_ProdutoDeOutroTenant(t *testing.T) {
	set := memstore.NewStore().Set()
	provider := &memProvider{set: set}
	seedProduct(t, set, "p1", "biz-b", "5.00", 10)

	uc := sales.NewFinalizeSaleUseCase(provider)
	_, err := uc.Finalize(context.Background(), sales.FinalizeInput{
		BusinessID:    "biz-a",
		PaymentMethod: entity.PaymentCash,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 1, UnitPrice: dec(t, "5.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// failingTxSet decora o Set do memstore com um TxRunner que sempre falha.
type failingTx struct{}

var errTxBoom = errors.New("tx indisponível")

func (failingTx) Run(context.Context, func(
	repository.SaleRepository,
	repository.ProductRepository,
	repository.StockMovementRepository,
) error) error {
	return errTxBoom
}

func TestFinalize_FalhaNaTransacaoPropaga(t *testing.T) {
	set := memstore.NewStore().Set()
	set.Tx = failingTx{}
	provider := &memProvider{set: set}
	seedProduct(t, set, "p1", "biz-a", "5.00", 10)

	uc := sales.NewFinalizeSaleUseCase(provider)
	_, err := uc.Finalize(context.Background(), sales.FinalizeInput{
		BusinessID:    "biz-a",
		PaymentMethod: entity.PaymentCash,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 1, UnitPrice: dec(t, "5.00")},
		},
	})
	assert.ErrorIs(t, err, errTxBoom)

	// nada ficou visível
	list, err := set.Sales.ListByBusiness("biz-a", repository.SaleFilter{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFinalize_ProdutoRepetidoSomaAsLinhas(t *testing.T) {
	set := memstore.NewStore().Set()
	provider := &memProvider{set: set}
	seedProduct(t, set, "p1", "biz-a", "2.00", 5)

	uc := sales.NewFinalizeSaleUseCase(provider)

	// 3 + 3 do mesmo produto contra estoque 5: cada linha cabe sozinha, a
	// soma não. Rejeita antes de qualquer escrita.
	_, err := uc.Finalize(context.Background(), sales.FinalizeInput{
		BusinessID:    "biz-a",
		OperatorID:    "op-1",
		PaymentMethod: entity.PaymentCash,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 3, UnitPrice: dec(t, "2.00")},
			{ProductID: "p1", Quantity: 3, UnitPrice: dec(t, "2.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p1, err := set.Products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 5, p1.Stock)

	list, err := set.Sales.ListByBusiness("biz-a", repository.SaleFilter{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, list)

	movs, err := set.Movements.ListByBusiness("biz-a", "", 50, 0)
	require.NoError(t, err)
	assert.Empty(t, movs)

	// quando a soma cabe, as duas linhas passam e a baixa é acumulada
	out, err := uc.Finalize(context.Background(), sales.FinalizeInput{
		BusinessID:    "biz-a",
		OperatorID:    "op-1",
		PaymentMethod: entity.PaymentCash,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2, UnitPrice: dec(t, "2.00")},
			{ProductID: "p1", Quantity: 2, UnitPrice: dec(t, "2.00")},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	p1, err = set.Products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 1, p1.Stock)
}
