package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/sales"
	"github.com/caixalivre/pdv-api/internal/domain"
)

// SaleHandler finalização e consulta de vendas.
type SaleHandler struct {
	finalize *sales.FinalizeSaleUseCase
	list     *sales.ListSalesUseCase
}

// NewSaleHandler constrói o handler de vendas.
func NewSaleHandler(finalize *sales.FinalizeSaleUseCase, list *sales.ListSalesUseCase) *SaleHandler {
	return &SaleHandler{finalize: finalize, list: list}
}

// Create finaliza uma venda: grava venda, itens, baixa de estoque e
// movimentos atomicamente.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.finalize.Finalize(c.Context(), sales.FinalizeInput{
		BusinessID:    GetBusinessID(c),
		OperatorID:    GetUserID(c),
		PaymentMethod: in.PaymentMethod,
		Discount:      in.Discount,
		Items:         in.Items,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptySale):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_SALE", Message: "a venda precisa de ao menos um item"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "produto da venda não encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente para um dos itens"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista vendas do tenant. ?date=today restringe ao dia corrente;
// ?startDate=...&endDate=... (RFC 3339 ou 2006-01-02) têm prioridade.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()

	q := sales.ListQuery{
		DateFilter: c.Query("date"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	var err error
	if q.Start, err = parseDateQuery(c.Query("startDate")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "startDate inválido"})
	}
	if q.End, err = parseEndDateQuery(c.Query("endDate")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "endDate inválido"})
	}

	out, err := h.list.List(c.Context(), GetBusinessID(c), q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID devolve uma venda do tenant com seus itens. Venda de outro tenant
// responde 404 como se não existisse.
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.list.GetByID(c.Context(), GetBusinessID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venda não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venda não encontrada"})
	}
	return c.JSON(out)
}

// parseDateQuery aceita RFC 3339 completo ou só a data (2006-01-02).
func parseDateQuery(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// parseEndDateQuery idem, mas um valor só-data vira o começo do dia seguinte:
// o limite superior é exclusivo e endDate=2026-08-31 deve incluir o dia 31
// inteiro.
func parseEndDateQuery(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t.AddDate(0, 0, 1), nil
}
