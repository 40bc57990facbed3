package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/usecase"
	"github.com/caixalivre/pdv-api/internal/domain"
)

// NFCeHandler emissão e consulta de registros fiscais.
type NFCeHandler struct {
	uc *usecase.NFCeUseCase
}

// NewNFCeHandler constrói o handler de NFC-e.
func NewNFCeHandler(uc *usecase.NFCeUseCase) *NFCeHandler {
	return &NFCeHandler{uc: uc}
}

// Create gera o registro fiscal de uma venda: numera a série, deriva a chave
// de acesso e persiste com status pending.
func (h *NFCeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNFCeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetBusinessID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "saleId e cnpj (14 dígitos) são obrigatórios"})
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SALE_NOT_FOUND", Message: "venda não encontrada"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro fiscal já emitido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista registros fiscais do tenant, mais recentes primeiro.
func (h *NFCeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()

	out, err := h.uc.List(c.Context(), GetBusinessID(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
