// Package cart implementa o acumulador de itens do caixa. É o espelho
// servidor do carrinho da UI: mescla leituras repetidas do mesmo código de
// barras em incrementos de quantidade e recalcula os totais a cada mutação.
// Nenhuma operação toca persistência; a finalização é responsabilidade do
// caso de uso de vendas.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
)

// Line é uma linha do carrinho: snapshot de preço no momento da inclusão.
type Line struct {
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	Total       decimal.Decimal // Quantity × UnitPrice
}

// Cart acumula linhas indexadas por produto, preservando a ordem de inclusão.
// Não é seguro para uso concorrente; cada sessão de caixa tem o seu.
type Cart struct {
	lines map[string]*Line
	order []string
}

// New cria um carrinho vazio.
func New() *Cart {
	return &Cart{lines: make(map[string]*Line)}
}

// Add insere uma linha nova ou incrementa a existente. Rejeita com
// ErrInsufficientStock, sem alterar estado, se a quantidade pedida — somada à
// que já está no carrinho — exceder o estoque do produto.
func (c *Cart) Add(product *entity.Product, quantity int) error {
	if product == nil || quantity <= 0 {
		return domain.ErrInvalidInput
	}
	current := 0
	if line, ok := c.lines[product.ID]; ok {
		current = line.Quantity
	}
	if current+quantity > product.Stock {
		return domain.ErrInsufficientStock
	}
	line, ok := c.lines[product.ID]
	if !ok {
		line = &Line{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
		}
		c.lines[product.ID] = line
		c.order = append(c.order, product.ID)
	}
	line.Quantity += quantity
	line.Total = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
	return nil
}

// SetQuantity ajusta a quantidade de uma linha. Quantidade <= 0 remove a
// linha; quantidade acima do estoque rejeita com ErrInsufficientStock sem
// alterar nada.
func (c *Cart) SetQuantity(productID string, quantity int, stock int) error {
	line, ok := c.lines[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if quantity <= 0 {
		c.Remove(productID)
		return nil
	}
	if quantity > stock {
		return domain.ErrInsufficientStock
	}
	line.Quantity = quantity
	line.Total = line.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return nil
}

// Remove apaga a linha incondicionalmente. Remover o que não existe é no-op.
func (c *Cart) Remove(productID string) {
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear esvazia todas as linhas.
func (c *Cart) Clear() {
	c.lines = make(map[string]*Line)
	c.order = nil
}

// Total soma os totais de linha. Função pura, sem efeitos colaterais.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Total)
	}
	return total
}

// Items devolve as linhas na ordem de inclusão (cópia, o carrinho segue dono
// do estado interno).
func (c *Cart) Items() []Line {
	items := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.lines[id])
	}
	return items
}

// Len devolve o número de linhas.
func (c *Cart) Len() int { return len(c.lines) }

// IsEmpty informa se o carrinho está vazio.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }
