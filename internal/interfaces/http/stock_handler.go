package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/stock"
	"github.com/caixalivre/pdv-api/internal/domain"
)

// StockHandler lançamentos manuais e consulta do ledger de estoque.
type StockHandler struct {
	uc *stock.RegisterMovementUseCase
}

// NewStockHandler constrói o handler de estoque.
func NewStockHandler(uc *stock.RegisterMovementUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RegisterMovement registra uma entrada ou saída manual e aplica o saldo.
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), GetBusinessID(c), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId, type (in|out) e quantity > 0 são obrigatórios"})
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "produto não encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "saldo insuficiente para a saída"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista movimentos do tenant; ?productId= filtra por produto.
func (h *StockHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()

	out, err := h.uc.List(c.Context(), GetBusinessID(c), c.Query("productId"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
