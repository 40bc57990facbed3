package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/usecase"
	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
	"github.com/caixalivre/pdv-api/internal/infrastructure/memstore"
)

func TestProductCreate_Validacoes(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProvider{set: memstore.NewStore().Set()})
	ctx := context.Background()

	_, err := uc.Create(ctx, "biz-a", dto.CreateProductRequest{Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome é obrigatório")

	_, err = uc.Create(ctx, "biz-a", dto.CreateProductRequest{Name: "Café"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "preço deve ser positivo")

	_, err = uc.Create(ctx, "biz-a", dto.CreateProductRequest{
		Name: "Café", Price: decimal.NewFromInt(8), Stock: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estoque inicial não pode ser negativo")
}

func TestProductCreate_BarcodeUnicoPorTenant(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProvider{set: memstore.NewStore().Set()})
	ctx := context.Background()

	_, err := uc.Create(ctx, "biz-a", dto.CreateProductRequest{
		Name: "Café", Barcode: "789100", Price: decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	_, err = uc.Create(ctx, "biz-a", dto.CreateProductRequest{
		Name: "Outro", Barcode: "789100", Price: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// outro tenant pode repetir o código
	_, err = uc.Create(ctx, "biz-b", dto.CreateProductRequest{
		Name: "Café", Barcode: "789100", Price: decimal.NewFromInt(8),
	})
	assert.NoError(t, err)
}

func TestProductUpdate_NaoMexeNoEstoque(t *testing.T) {
	set := memstore.NewStore().Set()
	uc := usecase.NewProductUseCase(&memProvider{set: set})
	ctx := context.Background()

	created, err := uc.Create(ctx, "biz-a", dto.CreateProductRequest{
		Name: "Café", Price: decimal.NewFromInt(8), Stock: 12,
	})
	require.NoError(t, err)

	novoNome := "Café torrado"
	updated, err := uc.Update(ctx, "biz-a", created.ID, dto.UpdateProductRequest{Name: &novoNome})
	require.NoError(t, err)

	assert.Equal(t, "Café torrado", updated.Name)
	assert.Equal(t, 12, updated.Stock)
}

func TestProductList_SomenteBaixoEstoque(t *testing.T) {
	set := memstore.NewStore().Set()
	uc := usecase.NewProductUseCase(&memProvider{set: set})
	ctx := context.Background()

	_, err := uc.Create(ctx, "biz-a", dto.CreateProductRequest{
		Name: "Abaixo", Price: decimal.NewFromInt(1), Stock: 2, MinStock: 5,
	})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "biz-a", dto.CreateProductRequest{
		Name: "Cheio", Price: decimal.NewFromInt(1), Stock: 50, MinStock: 5,
	})
	require.NoError(t, err)

	out, err := uc.List(ctx, "biz-a", true, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Abaixo", out.Items[0].Name)
	assert.True(t, out.Items[0].LowStock)
}

// failingBarcodeRepo simula uma falha de leitura na consulta por código de
// barras.
type failingBarcodeRepo struct{ repository.ProductRepository }

var errConsultaBarcode = errors.New("consulta de barcode indisponível")

func (failingBarcodeRepo) GetByBarcode(string, string) (*entity.Product, error) {
	return nil, errConsultaBarcode
}

func TestProductCreate_FalhaNaConsultaDeBarcodePropaga(t *testing.T) {
	set := memstore.NewStore().Set()
	set.Products = failingBarcodeRepo{ProductRepository: set.Products}
	uc := usecase.NewProductUseCase(&memProvider{set: set})

	_, err := uc.Create(context.Background(), "biz-a", dto.CreateProductRequest{
		Name: "Café", Barcode: "789100", Price: decimal.NewFromInt(8),
	})
	assert.ErrorIs(t, err, errConsultaBarcode)
}
