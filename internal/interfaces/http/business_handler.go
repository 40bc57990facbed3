package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/usecase"
	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
)

// BusinessHandler administração de tenants.
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler constrói o handler de negócios.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Create cria um tenant novo.
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devolve um tenant. Operadores comuns só enxergam o próprio.
func (h *BusinessHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if GetRole(c) != entity.RoleSuperAdmin && id != GetBusinessID(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sem acesso a outro negócio"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negócio não encontrado"})
	}
	return c.JSON(out)
}

// List lista tenants conforme o papel: superadmin enxerga todos, os demais
// recebem apenas o próprio negócio.
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	if GetRole(c) != entity.RoleSuperAdmin {
		own, err := h.uc.GetByID(c.Context(), GetBusinessID(c))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if own == nil {
			return c.JSON(dto.BusinessListResponse{Items: []dto.BusinessResponse{}})
		}
		return c.JSON(dto.BusinessListResponse{
			Items: []dto.BusinessResponse{*own},
			Page:  dto.PageResponse{Limit: 1, Total: 1},
		})
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()

	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
