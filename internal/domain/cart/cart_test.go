package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/cart"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func produto(id, nome string, preco string, estoque int) *entity.Product {
	return &entity.Product{
		ID:    id,
		Name:  nome,
		Price: decimal.RequireFromString(preco),
		Stock: estoque,
	}
}

// Caso base: duas linhas distintas, total = soma dos totais de linha.
// Vetor de referência: 2 × 8.50 + 1 × 3.20 = 20.20.
func TestCart_TotalDuasLinhas(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(produto("p1", "Café", "8.50", 10), 2))
	require.NoError(t, c.Add(produto("p2", "Pão", "3.20", 5), 1))

	assert.Equal(t, "20.2", c.Total().String(), "total deve ser 20.20")
	assert.Equal(t, 2, c.Len())

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID, "ordem de inclusão deve ser preservada")
	assert.Equal(t, "17", items[0].Total.String())
	assert.Equal(t, "3.2", items[1].Total.String())
}

// Leituras repetidas do mesmo código de barras viram incremento de quantidade.
func TestCart_AddMesclaLeiturasRepetidas(t *testing.T) {
	c := cart.New()
	p := produto("p1", "Café", "8.50", 10)
	require.NoError(t, c.Add(p, 1))
	require.NoError(t, c.Add(p, 1))
	require.NoError(t, c.Add(p, 2))

	items := c.Items()
	require.Len(t, items, 1, "leituras repetidas não criam linhas novas")
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, "34", items[0].Total.String())
}

// Produto com estoque zero nunca entra no carrinho e o estado não muda.
func TestCart_AddEstoqueZeroRejeitado(t *testing.T) {
	c := cart.New()
	err := c.Add(produto("p1", "Café", "8.50", 0), 1)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, c.IsEmpty(), "rejeição não deve alterar o carrinho")
	assert.True(t, c.Total().IsZero())
}

// Incremento que ultrapassaria o estoque é rejeitado sem mexer na linha.
func TestCart_AddAcimaDoEstoqueRejeitado(t *testing.T) {
	c := cart.New()
	p := produto("p1", "Café", "8.50", 3)
	require.NoError(t, c.Add(p, 2))

	err := c.Add(p, 2) // 2 + 2 > 3
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity, "quantidade deve permanecer a anterior")
	assert.Equal(t, "17", c.Total().String())
}

// SetQuantity com valor <= 0 remove a linha.
func TestCart_SetQuantityZeroRemoveLinha(t *testing.T) {
	c := cart.New()
	p := produto("p1", "Café", "8.50", 10)
	require.NoError(t, c.Add(p, 2))

	require.NoError(t, c.SetQuantity("p1", 0, p.Stock))
	assert.True(t, c.IsEmpty())
}

// SetQuantity acima do estoque rejeita sem alterar a linha.
func TestCart_SetQuantityAcimaDoEstoque(t *testing.T) {
	c := cart.New()
	p := produto("p1", "Café", "8.50", 3)
	require.NoError(t, c.Add(p, 2))

	err := c.SetQuantity("p1", 5, p.Stock)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, c.Items()[0].Quantity)
}

// SetQuantity em linha inexistente devolve ErrNotFound.
func TestCart_SetQuantityLinhaInexistente(t *testing.T) {
	c := cart.New()
	assert.ErrorIs(t, c.SetQuantity("nope", 1, 10), domain.ErrNotFound)
}

// Remove apaga incondicionalmente; remover de novo é no-op.
func TestCart_RemoveEClear(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(produto("p1", "Café", "8.50", 10), 1))
	require.NoError(t, c.Add(produto("p2", "Pão", "3.20", 5), 1))

	c.Remove("p1")
	assert.Equal(t, 1, c.Len())
	c.Remove("p1") // no-op
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
}

// Propriedade: após qualquer sequência de mutações, Total() == Σ totais de linha.
func TestCart_TotalConsistenteAposMutacoes(t *testing.T) {
	c := cart.New()
	p1 := produto("p1", "Café", "8.50", 10)
	p2 := produto("p2", "Pão", "3.20", 8)
	p3 := produto("p3", "Leite", "4.75", 2)

	require.NoError(t, c.Add(p1, 3))
	require.NoError(t, c.Add(p2, 2))
	require.NoError(t, c.Add(p3, 2))
	require.NoError(t, c.SetQuantity("p2", 5, p2.Stock))
	c.Remove("p3")
	_ = c.Add(p3, 99) // rejeitado, não deve afetar o total

	soma := decimal.Zero
	for _, line := range c.Items() {
		soma = soma.Add(line.Total)
		assert.LessOrEqual(t, line.Quantity, 10, "nenhuma linha excede o estoque")
	}
	assert.True(t, c.Total().Equal(soma), "Total() deve ser a soma das linhas")
	assert.Equal(t, "41.5", c.Total().String()) // 3×8.50 + 5×3.20
}
